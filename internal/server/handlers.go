package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

// multipartMemory is how much of a multipart form is held in memory before spilling to disk
const multipartMemory = 8 << 20

// parseUpload bounds the request body and parses it as a multipart form
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return false
	}
	return true
}

// handleSkills extracts the hard and soft skills of one uploaded resume
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	if !s.parseUpload(w, r) {
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["resume"]
	if len(headers) == 0 {
		// A part sent with an empty filename is parsed as a plain value
		if _, ok := r.MultipartForm.Value["resume"]; ok {
			s.errorResponse(w, http.StatusBadRequest, "No selected file")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No resume file provided")
		return
	}
	header := headers[0]
	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}

	if !s.lexiconsReady() {
		err := &ErrLexiconsMissing{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	session, err := s.newUploadSession()
	if err != nil {
		s.logger.Error("failed to create upload session", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	defer session.Cleanup()

	file, err := session.Save(header)
	if err != nil {
		s.logger.Error("failed to save upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	result, err := s.screener.ExtractSkillsFromFile(r.Context(), file)
	if err != nil {
		if errors.Is(err, extraction.ErrUnsupportedFormat) {
			s.errorResponse(w, HTTPStatus(err), "Unsupported file type. Use PDF or DOCX.")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result.Groups())
}

// handleRank ranks every uploaded resume against the job description form field
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	if !s.parseUpload(w, r) {
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	jobValues, ok := r.MultipartForm.Value["job"]
	if !ok || len(jobValues) == 0 {
		err := &ErrValidation{Field: "job", Message: "job description is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	headers := r.MultipartForm.File["resumes"]
	if len(headers) == 0 {
		s.jsonResponse(w, http.StatusOK, types.RankingResult{Matched: []types.CandidateMatch{}})
		return
	}

	session, err := s.newUploadSession()
	if err != nil {
		s.logger.Error("failed to create upload session", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store uploads")
		return
	}
	defer session.Cleanup()

	var skipped []types.SkippedDocument
	files := make([]screening.File, 0, len(headers))
	for _, header := range headers {
		if header.Filename == "" {
			continue
		}
		file, err := session.Save(header)
		if err != nil {
			s.logger.Warn("failed to save upload", zap.String("name", header.Filename), zap.Error(err))
			skipped = append(skipped, types.SkippedDocument{Name: cleanFileName(header.Filename), Reason: "upload failed"})
			continue
		}
		files = append(files, file)
	}

	result, err := s.screener.RankFiles(r.Context(), files, jobValues[0])
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	result.Skipped = append(skipped, result.Skipped...)

	s.jsonResponse(w, http.StatusOK, result)
}
