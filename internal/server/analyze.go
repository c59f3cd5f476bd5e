package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/campaign-kpi/internal/kpi"
	"github.com/sells-group/campaign-kpi/internal/loader"
	"github.com/sells-group/campaign-kpi/internal/model"
)

// analyzeResponse is the JSON report returned for one uploaded table pair.
type analyzeResponse struct {
	ID          string                  `json:"id"`
	Campaign    string                  `json:"campaign"`
	GeneratedAt time.Time               `json:"generated_at"`
	KPIs        []kpi.Metric            `json:"kpis"`
	Summary     model.Summary           `json:"summary"`
	Daily       []model.DailyAggregate  `json:"daily"`
	Converted   []model.ConvertedRecord `json:"converted"`
}

// handleAnalyze accepts multipart form fields "reach" and "buyers" (CSV or
// XLSX files) plus optional item_filter, start_date, end_date (YYYY-MM-DD,
// inclusive), and campaign. Schema violations come back as 422; everything
// else about the inputs degrades per-row as the engine defines.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(s.cfg.MaxUploadMB) << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	reachPath, reachCleanup, err := saveUpload(r, "reach")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer reachCleanup()

	buyersPath, buyersCleanup, err := saveUpload(r, "buyers")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer buyersCleanup()

	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reach, buyers, err := loader.LoadPair(r.Context(), reachPath, buyersPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := kpi.Compute(buyers, reach, params)
	if err != nil {
		var schemaErr *kpi.SchemaError
		if errors.As(err, &schemaErr) {
			writeError(w, http.StatusUnprocessableEntity, schemaErr.Error())
			return
		}
		zap.L().Error("analyze failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	campaign := strings.TrimSpace(r.FormValue("campaign"))
	if campaign == "" {
		campaign = s.defaultCampaign
	}

	resp := analyzeResponse{
		ID:          uuid.NewString(),
		Campaign:    campaign,
		GeneratedAt: time.Now().UTC(),
		KPIs:        kpi.FormatSummary(report.Summary),
		Summary:     report.Summary,
		Daily:       report.Daily,
		Converted:   report.Converted,
	}

	zap.L().Info("analyze complete",
		zap.String("report_id", resp.ID),
		zap.String("campaign", campaign),
		zap.Int("reach_unique", report.Summary.ReachUnique),
		zap.Int("converted_unique", report.Summary.ConvertedUnique),
	)
	writeJSON(w, http.StatusOK, resp)
}

// parseParams reads the optional filter fields of the form.
func parseParams(r *http.Request) (model.Params, error) {
	var p model.Params
	p.ItemFilter = strings.TrimSpace(r.FormValue("item_filter"))

	start, err := parseDateField(r.FormValue("start_date"))
	if err != nil {
		return p, eris.Wrap(err, "start_date")
	}
	p.Start = start

	end, err := parseDateField(r.FormValue("end_date"))
	if err != nil {
		return p, eris.Wrap(err, "end_date")
	}
	p.End = end

	return p, nil
}

func parseDateField(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, eris.Errorf("want YYYY-MM-DD, got %q", raw)
	}
	return &t, nil
}

// saveUpload copies a multipart file to a temp path, keeping the original
// extension so the loader can dispatch on it.
func saveUpload(r *http.Request, field string) (string, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, eris.Errorf("missing %q file upload", field)
	}
	defer file.Close()

	path, err := copyToTemp(file, header)
	if err != nil {
		return "", nil, eris.Wrapf(err, "save %q upload", field)
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func copyToTemp(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	tmp, err := os.CreateTemp("", "campaign-upload-*"+ext)
	if err != nil {
		return "", eris.Wrap(err, "create temp file")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = os.Remove(tmp.Name())
		return "", eris.Wrap(err, "copy upload")
	}
	return tmp.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
