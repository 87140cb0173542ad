package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnopengl_frames_rendered_total",
		Help: "Total number of frames swapped to the window",
	}, []string{"tutorial"})
	ShaderCompileFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnopengl_shader_compile_failures_total",
		Help: "Total number of shaders the driver refused to compile",
	}, []string{"stage"})
	ProgramLinkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnopengl_program_link_failures_total",
		Help: "Total number of shader programs that failed to link",
	})
	ShaderReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnopengl_shader_reloads_total",
		Help: "Total number of shader programs rebuilt after a source file changed",
	}, []string{"tutorial"})
	TextureUploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnopengl_texture_upload_bytes_total",
		Help: "Total number of texel bytes uploaded to the GPU",
	})
)

type TutorialMetrics struct {
	FramesRendered prometheus.Counter
	ShaderReloads  prometheus.Counter
}

func NewTutorialMetrics(id string) TutorialMetrics {
	m := TutorialMetrics{
		FramesRendered: FramesRendered.WithLabelValues(id),
		ShaderReloads:  ShaderReloads.WithLabelValues(id),
	}
	m.FramesRendered.Add(0)
	m.ShaderReloads.Add(0)
	return m
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
