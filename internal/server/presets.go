package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vislib-axis/internal/database"
	"vislib-axis/internal/types"
	"vislib-axis/internal/yaxis"
)

const svgSuffix = ".svg"

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := database.ListPresets()
	if err != nil {
		s.fail(w, err)
		return
	}
	if presets == nil {
		presets = []types.Preset{}
	}
	writeJSON(w, http.StatusOK, presets)
}

// handleGetPreset returns a preset as JSON, or its rendered axis when the
// name ends in .svg.
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !strings.HasSuffix(name, svgSuffix) {
		p, err := database.GetPreset(name)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}
	p, err := database.GetPreset(strings.TrimSuffix(name, svgSuffix))
	if err != nil {
		s.fail(w, err)
		return
	}
	req, err := presetRequest(p)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, key, req, svgOutput)
}

func (s *Server) handlePutPreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if strings.HasSuffix(name, svgSuffix) {
		s.fail(w, badRequest(errors.Errorf("preset names cannot end in %s", svgSuffix)))
		return
	}

	var p types.Preset
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.fail(w, badRequest(err))
		return
	}
	p.Name = name
	if p.Width == 0 {
		p.Width = defaultWidth
	}
	if p.Height == 0 {
		p.Height = defaultHeight
	}
	if _, err := presetRequest(&p); err != nil {
		s.fail(w, err)
		return
	}

	if err := database.SavePreset(p); err != nil {
		s.fail(w, err)
		return
	}
	s.cache.deletePrefix("/presets/" + name + svgSuffix)

	saved, err := database.GetPreset(name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := database.DeletePreset(name); err != nil {
		s.fail(w, err)
		return
	}
	s.cache.deletePrefix("/presets/" + name + svgSuffix)
	w.WriteHeader(http.StatusNoContent)
}

func presetRequest(p *types.Preset) (axisRequest, error) {
	mode, err := yaxis.ParseMode(p.Mode)
	if err != nil {
		return axisRequest{}, badRequest(err)
	}
	p.Mode = string(mode)
	return axisRequest{
		YMin:            p.YMin,
		YMax:            p.YMax,
		Mode:            mode,
		DefaultYExtents: p.DefaultYExtents,
		Width:           p.Width,
		Height:          p.Height,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
