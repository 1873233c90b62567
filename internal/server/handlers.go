// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/career-advisor/internal/jobsource"
	"github.com/jonathan/career-advisor/internal/learning"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/parsing"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/skillgap"
	"github.com/jonathan/career-advisor/internal/store"
	"github.com/jonathan/career-advisor/internal/types"
)

// defaultTimelineMonths is used when a learning path request omits the
// timeline.
const defaultTimelineMonths = 6

type parseRequest struct {
	ResumeText  string                  `json:"resume_text"`
	Preferences types.CareerPreferences `json:"preferences"`
}

type parseResponse struct {
	Fingerprint string             `json:"fingerprint"`
	Cached      bool               `json:"cached"`
	Profile     *types.UserProfile `json:"profile"`
	Data        *types.ResumeData  `json:"data"`
}

// handleParse runs the parsing pipeline over raw resume text. Repeated
// parses of the same text are served from the store by fingerprint.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ResumeText == "" {
		writeError(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	fingerprint := store.Fingerprint(req.ResumeText)
	if cached, err := s.parses.GetParse(r.Context(), fingerprint); err == nil && cached != nil {
		writeJSON(w, http.StatusOK, parseResponse{
			Fingerprint: fingerprint,
			Cached:      true,
			Profile:     cached.Profile,
			Data:        cached.Data,
		})
		return
	}

	data := parsing.Extract(req.ResumeText)
	if cleaned, err := s.cleaner.Clean(r.Context(), data); err == nil {
		data = cleaned
	}
	data = parsing.Normalize(data)
	profile := parsing.BuildProfile(data, req.Preferences)

	result := &store.ParseResult{
		Fingerprint: fingerprint,
		Profile:     profile,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.parses.SaveParse(r.Context(), result); err != nil {
		s.logger.Printf("failed to save parse result: %v", err)
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Fingerprint: fingerprint,
		Profile:     profile,
		Data:        data,
	})
}

type matchRequest struct {
	Profile     *types.UserProfile `json:"profile"`
	Postings    []types.JobPosting `json:"postings"`
	PostingURLs []string           `json:"posting_urls"`
	Options     *matching.Options  `json:"options"`
}

type matchResponse struct {
	Matches []types.MatchAnalysis `json:"matches"`
	Total   int                   `json:"total"`
}

// handleMatch ranks postings against a profile. Postings can be given
// inline, as URLs to fetch, or both.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Profile == nil {
		writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	postings := req.Postings
	if len(req.PostingURLs) > 0 {
		source := &jobsource.URLSource{URLs: req.PostingURLs}
		fetched, err := source.Postings(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to fetch postings: "+err.Error())
			return
		}
		postings = append(postings, fetched...)
	}
	if len(postings) == 0 {
		writeError(w, http.StatusBadRequest, "no postings to match against")
		return
	}

	opts := matching.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	matches, err := s.engine.Match(req.Profile, postings, opts)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Matches: matches, Total: len(matches)})
}

type skillGapRequest struct {
	Profile    *types.UserProfile `json:"profile"`
	TargetRole string             `json:"target_role"`
	Posting    *types.JobPosting  `json:"posting"`
}

// handleSkillGap compares a profile against a target role or a concrete
// posting.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req skillGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Profile == nil {
		writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	var report *types.SkillGapReport
	switch {
	case req.Posting != nil:
		report = skillgap.AnalyzePosting(req.Profile, req.Posting)
	case req.TargetRole != "":
		report = skillgap.AnalyzeProfile(req.Profile, req.TargetRole)
	default:
		writeError(w, http.StatusBadRequest, "target_role or posting is required")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

type learningPathRequest struct {
	Profile        *types.UserProfile `json:"profile"`
	TargetRole     string             `json:"target_role"`
	MissingSkills  []string           `json:"missing_skills"`
	TimelineMonths int                `json:"timeline_months"`
}

// handleLearningPath builds a study plan. The missing skills can be
// given directly or derived from a profile and target role.
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req learningPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	months := req.TimelineMonths
	if months == 0 {
		months = defaultTimelineMonths
	}

	var missing []string
	var targetRole string
	switch {
	case len(req.MissingSkills) > 0:
		missing = req.MissingSkills
		targetRole = req.TargetRole
	case req.Profile != nil && req.TargetRole != "":
		report := skillgap.AnalyzeProfile(req.Profile, req.TargetRole)
		missing = report.MissingSkills
		targetRole = report.TargetRole
	default:
		writeError(w, http.StatusBadRequest, "missing_skills or profile with target_role is required")
		return
	}

	path, err := learning.GeneratePath(targetRole, missing, months)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, path)
}

// handleRoles lists the roles with built-in skill requirements.
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"roles": skillgap.KnownRoles()})
}

// handleMe returns the authenticated account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}
