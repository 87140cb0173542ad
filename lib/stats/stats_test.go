package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFramesPerSecond(t *testing.T) {
	s := New("1_1_2")
	start := s.start

	for i := 1; i <= 59; i++ {
		s.update(start.Add(time.Duration(i)*10*time.Millisecond), 0, 0)
	}
	assert.Equal(t, uint64(0), s.FPS)

	s.update(start.Add(1100*time.Millisecond), 1024, 1)

	snap := s.Snapshot()
	assert.Equal(t, uint64(60), snap.FPS)
	assert.Equal(t, uint64(60), snap.Frames)
	assert.Equal(t, uint64(1024), snap.TextureUpload)
	assert.Equal(t, uint64(1), snap.ShaderCompileFailures)
	assert.InDelta(t, 1.1, snap.Uptime, 1e-9)
	assert.Equal(t, "1_1_2", snap.Tutorial)
}

func TestShaderReloadedAndClients(t *testing.T) {
	s := New("1_3_2")
	s.ShaderReloaded()
	s.ShaderReloaded()
	s.SetWsClients(3)

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.ShaderReloads)
	assert.Equal(t, 3, snap.WsClients)
}
