package stats

import (
	"sync"
	"time"
)

type Stats struct {
	Tutorial              string  `json:"tutorial"`
	Frames                uint64  `json:"frames"`
	FPS                   uint64  `json:"fps"`
	Uptime                float64 `json:"uptime"`
	TextureUpload         uint64  `json:"texture_upload"`
	ShaderCompileFailures uint64  `json:"shader_compile_failures"`
	ShaderReloads         uint64  `json:"shader_reloads"`
	WsClients             int     `json:"ws_clients"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	mu sync.Mutex
}

func New(tutorial string) *Stats {
	s := &Stats{Tutorial: tutorial}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update is called once per rendered frame.
func (s *Stats) Update(textureUpload uint64, compileFailures uint64) {
	s.update(time.Now(), textureUpload, compileFailures)
}

func (s *Stats) update(now time.Time, textureUpload uint64, compileFailures uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
	s.TextureUpload = textureUpload
	s.ShaderCompileFailures = compileFailures
}

func (s *Stats) ShaderReloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ShaderReloads++
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

// Snapshot returns a copy that is safe to encode while rendering continues.
func (s *Stats) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Tutorial:              s.Tutorial,
		Frames:                s.Frames,
		FPS:                   s.FPS,
		Uptime:                s.Uptime,
		TextureUpload:         s.TextureUpload,
		ShaderCompileFailures: s.ShaderCompileFailures,
		ShaderReloads:         s.ShaderReloads,
		WsClients:             s.WsClients,
	}
}
