// pkg/server/handlers.go
package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/csvio"
	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
	"github.com/clapenergy/mailtrace-render-starter/pkg/match"
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Detected fields below this confidence are sent back to the user for
// confirmation even when a column was guessed.
const lowConfidenceThreshold = 0.5

type indexData struct {
	Error string
}

type fieldRow struct {
	Name     string
	Input    string
	Selected string
	Required bool
}

type datasetMapping struct {
	Title   string
	Headers []string
	// First few data rows, shown so the user can see what each column holds.
	Sample [][]string
	Fields []fieldRow
}

type mappingData struct {
	Token    string
	Error    string
	Datasets []datasetMapping
}

type previewRow struct {
	MailAddress string
	MailCSZ     string
	CRMAddress  string
	CRMCSZ      string
	Status      string
	Confidence  string
	Note        string
}

type dashboardData struct {
	Token        string
	Summary      match.Summary
	MatchRatePct float64
	Rows         []previewRow
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, indexTemplate, indexData{Error: r.URL.Query().Get("error")})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.options.MaxUploadBytes)
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		s.redirectWithError(w, r, "Upload failed; check the file sizes and try again.")
		return
	}

	mail, err := s.readUpload(r, "mail_csv", model.DatasetMail)
	if err != nil {
		s.redirectWithError(w, r, "Could not read the mail CSV: "+err.Error())
		return
	}
	crm, err := s.readUpload(r, "crm_csv", model.DatasetCRM)
	if err != nil {
		s.redirectWithError(w, r, "Could not read the CRM CSV: "+err.Error())
		return
	}

	sess := s.store.Create()
	sess.Mail = mail
	sess.CRM = crm
	sess.MailGuess = s.engine.DetectColumns(mail)
	sess.CRMGuess = s.engine.DetectColumns(crm)
	sess.MailMapping = sess.MailGuess.Mapping
	sess.CRMMapping = sess.CRMGuess.Mapping

	s.logger.Info("Upload received",
		zap.String("token", sess.Token),
		zap.Int("mailRows", len(mail.Rows)),
		zap.Int("crmRows", len(crm.Rows)))

	if s.needsConfirmation(sess) {
		s.renderMapping(w, sess, "")
		return
	}
	s.runAndRender(w, sess)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess := s.store.Get(r.FormValue("token"))
	if sess == nil || sess.Mail == nil || sess.CRM == nil {
		s.redirectWithError(w, r, "Your session expired; please upload again.")
		return
	}

	sess.MailMapping = formMapping(r, "mail", sess.MailMapping)
	sess.CRMMapping = formMapping(r, "crm", sess.CRMMapping)
	s.runAndRender(w, sess)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.URL.Query().Get("token"))
	if sess == nil || sess.Result == nil {
		s.redirectWithError(w, r, "Nothing to download; please upload again.")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="mailtrace_matches.csv"`)
	if err := csvio.WriteResults(w, sess.Result.Results, sess.MailMapping, sess.CRMMapping); err != nil {
		s.logger.Error("Failed to stream export CSV", zap.Error(err))
	}
}

// runAndRender executes the engine for a session and renders the dashboard,
// falling back to the mapping form when a required field is still unmapped.
func (s *Server) runAndRender(w http.ResponseWriter, sess *Session) {
	result, err := s.engine.Run(sess.Mail, sess.CRM, sess.MailMapping, sess.CRMMapping)
	if err != nil {
		if engine.IsMappingIncomplete(err) {
			s.renderMapping(w, sess, "Some required columns are still unmapped: "+err.Error())
			return
		}
		s.logger.Error("Matching run failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	sess.Result = result

	data := dashboardData{
		Token:        sess.Token,
		Summary:      result.Summary,
		MatchRatePct: result.Summary.MatchRate * 100,
		Rows:         s.previewRows(sess),
	}
	s.render(w, dashboardTemplate, data)
}

func (s *Server) previewRows(sess *Session) []previewRow {
	rows := make([]previewRow, 0, s.options.PreviewRows)
	for _, r := range sess.Result.Results {
		if len(rows) >= s.options.PreviewRows {
			break
		}
		row := previewRow{
			MailAddress: displayAddress(r.Mail.Raw, sess.MailMapping),
			MailCSZ:     displayCSZ(r.Mail.Raw, sess.MailMapping),
			Status:      string(r.Status),
		}
		if r.Matched() {
			row.CRMAddress = displayAddress(r.Best.CRM.Raw, sess.CRMMapping)
			row.CRMCSZ = displayCSZ(r.Best.CRM.Raw, sess.CRMMapping)
			row.Confidence = strconv.Itoa(r.Best.Confidence) + "%"
			// The dashboard table is the audit view, so every note is
			// shown, the no-unit-info annotation included.
			row.Note = r.Best.MatchNote
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Server) renderMapping(w http.ResponseWriter, sess *Session, errMsg string) {
	data := mappingData{
		Token: sess.Token,
		Error: errMsg,
		Datasets: []datasetMapping{
			datasetFields("Mail file: pick columns", "mail", sess.Mail, sess.MailMapping),
			datasetFields("CRM file: pick columns", "crm", sess.CRM, sess.CRMMapping),
		},
	}
	s.render(w, mappingTemplate, data)
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("Template render failed", zap.Error(err))
	}
}

func (s *Server) readUpload(r *http.Request, field, name string) (*model.Dataset, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing file %q", field)
	}
	defer file.Close()
	return csvio.Read(file, name)
}

func (s *Server) needsConfirmation(sess *Session) bool {
	return !sess.MailMapping.Complete() || !sess.CRMMapping.Complete() ||
		len(sess.MailGuess.LowConfidence(lowConfidenceThreshold)) > 0 ||
		len(sess.CRMGuess.LowConfidence(lowConfidenceThreshold)) > 0
}

func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

// formMapping overlays the user's form choices on the detected mapping.
// An explicit choice always wins; empty selections clear the field.
func formMapping(r *http.Request, kind string, detected model.ColumnMapping) model.ColumnMapping {
	mapping := model.ColumnMapping{}
	for field, column := range detected {
		mapping[field] = column
	}
	for _, field := range model.AllFields() {
		key := kind + ":" + string(field)
		if _, present := r.Form[key]; !present {
			continue
		}
		if column := r.FormValue(key); column != "" {
			mapping[field] = column
		} else {
			delete(mapping, field)
		}
	}
	return mapping
}

const mappingSampleRows = 3

func datasetFields(title, kind string, ds *model.Dataset, mapping model.ColumnMapping) datasetMapping {
	dm := datasetMapping{Title: title, Headers: ds.Headers}
	for i, rec := range ds.Rows {
		if i >= mappingSampleRows {
			break
		}
		sample := make([]string, len(ds.Headers))
		for j, header := range ds.Headers {
			sample[j] = rec.Get(header)
		}
		dm.Sample = append(dm.Sample, sample)
	}
	for _, field := range model.AllFields() {
		selected, _ := mapping.Column(field)
		dm.Fields = append(dm.Fields, fieldRow{
			Name:     string(field),
			Input:    kind + ":" + string(field),
			Selected: selected,
			Required: field != model.FieldUnit,
		})
	}
	return dm
}

func displayAddress(rec model.RawRecord, mapping model.ColumnMapping) string {
	street := strings.TrimSpace(rec.Field(mapping, model.FieldStreet))
	unit := strings.TrimSpace(rec.Field(mapping, model.FieldUnit))
	if unit == "" {
		return street
	}
	return street + ", " + unit
}

func displayCSZ(rec model.RawRecord, mapping model.ColumnMapping) string {
	city := strings.TrimSpace(rec.Field(mapping, model.FieldCity))
	state := strings.TrimSpace(rec.Field(mapping, model.FieldState))
	zip := strings.TrimSpace(rec.Field(mapping, model.FieldZip))

	out := city
	if state != "" {
		if out != "" {
			out += ", "
		}
		out += state
	}
	if zip != "" {
		if out != "" {
			out += " "
		}
		out += zip
	}
	return out
}
