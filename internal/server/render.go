package server

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vislib-axis/internal/chart"
	"vislib-axis/internal/database"
	"vislib-axis/internal/metrics"
	"vislib-axis/internal/validate"
	"vislib-axis/internal/yaxis"
	"vislib-axis/lib/helpers"
	"vislib-axis/lib/translation"
)

// Container size used when a request leaves it out.
const (
	defaultWidth  = 60
	defaultHeight = 300
)

type output struct {
	contentType string
	provider    chart.Provider
}

var (
	svgOutput = output{contentType: "image/svg+xml"}
	pngOutput = output{contentType: "image/png", provider: chart.PNG}
)

// axisRequest is one axis to draw into a container of Width x Height
// pixels, margins included.
type axisRequest struct {
	YMin, YMax      float64
	Mode            yaxis.Mode
	DefaultYExtents bool
	Width, Height   float64
}

// requestError is a malformed request. Its message is shown to the client.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(err error) error {
	return &requestError{msg: translation.Translate("Bad request: %s", err.Error())}
}

func parseAxisRequest(values url.Values) (axisRequest, error) {
	var req axisRequest
	var err error

	if req.YMin, err = helpers.RequireFloat(values, "ymin"); err != nil {
		return req, badRequest(err)
	}
	if req.YMax, err = helpers.RequireFloat(values, "ymax"); err != nil {
		return req, badRequest(err)
	}
	if req.Width, err = helpers.QueryFloat(values, "width", defaultWidth); err != nil {
		return req, badRequest(err)
	}
	if req.Height, err = helpers.QueryFloat(values, "height", defaultHeight); err != nil {
		return req, badRequest(err)
	}
	if req.DefaultYExtents, err = helpers.QueryBool(values, "default_y_extents"); err != nil {
		return req, badRequest(err)
	}
	if req.Mode, err = yaxis.ParseMode(helpers.QueryString(values, "mode", string(yaxis.ModeNormal))); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

func (s *Server) config(req axisRequest) yaxis.Config {
	return yaxis.Config{
		YMin: req.YMin,
		YMax: req.YMax,
		Attributes: yaxis.Attributes{
			Mode:            req.Mode,
			DefaultYExtents: req.DefaultYExtents,
			Margin:          s.opt.Margin,
		},
	}
}

// render draws req. It returns nil data when the mode hides the axis.
func (s *Server) render(req axisRequest, out output) ([]byte, error) {
	y := yaxis.New(s.config(req), yaxis.WithFormatter(s.opt.Formatter))
	if out.provider != nil {
		return y.Image(out.provider, req.Width, req.Height, s.opt.Painter)
	}
	return y.SVG(req.Width, req.Height)
}

func (s *Server) handleAxis(out output) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := cacheKey(r)
		if s.serveCached(w, key) {
			return
		}

		req, err := parseAxisRequest(r.URL.Query())
		if err != nil {
			s.fail(w, err)
			return
		}
		s.respond(w, key, req, out)
	}
}

func (s *Server) respond(w http.ResponseWriter, key string, req axisRequest, out output) {
	data, err := s.render(req, out)
	if err != nil {
		s.fail(w, err)
		return
	}

	mode := string(req.Mode)
	if data == nil {
		s.opt.Metrics.SuppressedTotal.WithLabelValues(mode).Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.opt.Metrics.RendersTotal.WithLabelValues(mode).Inc()
	s.cache.set(key, data, out.contentType)
	w.Header().Set("Content-Type", out.contentType)
	w.Write(data)
}

func (s *Server) serveCached(w http.ResponseWriter, key string) bool {
	item, ok := s.cache.get(key)
	if !ok {
		return false
	}
	s.opt.Metrics.CacheHitsTotal.Inc()
	w.Header().Set("Content-Type", item.ContentType)
	w.Write(item.Data)
	return true
}

func cacheKey(r *http.Request) string {
	return r.URL.Path + "?" + r.URL.Query().Encode()
}

// fail writes the status matching err and counts it.
func (s *Server) fail(w http.ResponseWriter, err error) {
	var (
		reqErr   *requestError
		dimErr   *validate.DimensionError
		scaleErr *yaxis.InvalidScaleError
	)

	switch {
	case errors.As(err, &reqErr):
		s.opt.Metrics.ErrorsTotal.WithLabelValues(metrics.KindRequest).Inc()
		http.Error(w, reqErr.msg, http.StatusBadRequest)
	case errors.As(err, &dimErr):
		s.opt.Metrics.ErrorsTotal.WithLabelValues(metrics.KindDimension).Inc()
		http.Error(w, translation.Translate("Invalid size %vx%v for %s", dimErr.Width, dimErr.Height, dimErr.Element), http.StatusBadRequest)
	case errors.As(err, &scaleErr):
		s.opt.Metrics.ErrorsTotal.WithLabelValues(metrics.KindScale).Inc()
		http.Error(w, translation.Translate("Cannot draw an axis for [%v, %v]", scaleErr.YMin, scaleErr.YMax), http.StatusUnprocessableEntity)
	case errors.Is(err, database.ErrPresetNotFound):
		http.Error(w, translation.Translate("Unknown preset"), http.StatusNotFound)
	default:
		s.opt.Metrics.ErrorsTotal.WithLabelValues(metrics.KindInternal).Inc()
		log.Errorf("Failed to serve axis: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
