package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/solver"
	"github.com/katalvlaran/littletsp/tsp"
)

// errBadBody wraps decoder failures that carry no matrix sentinel.
var errBadBody = errors.New("server: malformed request body")

// StatusClientClosedRequest is the non-standard code for requests the
// client abandoned.
const StatusClientClosedRequest = 499

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SolveResponse reports a finished search.
type SolveResponse struct {
	Status    solver.Status `json:"status"`
	Route     *tsp.Route    `json:"route,omitempty"`
	Stats     tsp.Stats     `json:"stats"`
	ElapsedMS int64         `json:"elapsed_ms"`
	Cached    bool          `json:"cached"`
}

// JobResponse reports a job's state.
type JobResponse struct {
	ID     string         `json:"id"`
	Status solver.Status  `json:"status"`
	Nodes  int            `json:"nodes"`
	Result *SolveResponse `json:"result,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	m, err := decodeMatrix(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := s.svc.Solve(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}
	if out.Status != solver.StatusSolved {
		writeError(w, out.Err)
		return
	}
	writeJSON(w, http.StatusOK, toSolveResponse(out))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	m, err := decodeMatrix(r)
	if err != nil {
		writeError(w, err)
		return
	}

	j, err := s.svc.Submit(m)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/jobs/"+j.ID)
	writeJSON(w, http.StatusAccepted, toJobResponse(j))
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	j, err := s.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.svc.Cancel(id); err != nil {
		writeError(w, err)
		return
	}
	j, err := s.svc.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, toJobResponse(j))
}

// decodeMatrix reads the request body in the format named by Content-Type.
func decodeMatrix(r *http.Request) (*matrix.Costs, error) {
	f := matrix.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.Join(matrix.ErrUnknownFormat, err)
		}
		if f, err = formatForMediaType(mt); err != nil {
			return nil, err
		}
	}
	m, err := matrix.Decode(http.MaxBytesReader(nil, r.Body, maxBodyBytes), f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadBody, err)
	}
	return m, nil
}

func formatForMediaType(mt string) (matrix.Format, error) {
	switch mt {
	case "application/json":
		return matrix.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return matrix.FormatYAML, nil
	case "application/toml":
		return matrix.FormatTOML, nil
	case "text/plain":
		return matrix.FormatText, nil
	default:
		return "", matrix.ErrUnknownFormat
	}
}

func toSolveResponse(out solver.Outcome) *SolveResponse {
	return &SolveResponse{
		Status:    out.Status,
		Route:     out.Route,
		Stats:     out.Stats,
		ElapsedMS: out.Elapsed.Milliseconds(),
		Cached:    out.Cached,
	}
}

func toJobResponse(j *solver.Job) JobResponse {
	out, status := j.Snapshot()
	resp := JobResponse{ID: j.ID, Status: status, Nodes: j.Nodes}
	if status.Terminal() {
		resp.Result = toSolveResponse(out)
	}
	return resp
}

// statusFor maps errors from every layer to an HTTP status and error code.
func statusFor(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, tsp.ErrNoTour):
		return http.StatusUnprocessableEntity, "NO_TOUR"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "TIMEOUT"
	case errors.Is(err, tsp.ErrCancelled), errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "CANCELLED"
	case errors.Is(err, solver.ErrUnknownJob):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, solver.ErrClosed):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "TOO_LARGE"
	case errors.Is(err, matrix.ErrUnknownFormat):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT"
	case errors.Is(err, tsp.ErrTooFewNodes),
		errors.Is(err, tsp.ErrTooManyNodes),
		errors.Is(err, tsp.ErrUnsupportedAlgorithm),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrNegativeCost),
		errors.Is(err, matrix.ErrDiagonal),
		errors.Is(err, matrix.ErrSyntax),
		errors.Is(err, matrix.ErrOutOfRange),
		errors.Is(err, matrix.ErrNilMatrix):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, errBadBody):
		return http.StatusBadRequest, "BAD_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: err.Error()}})
}
