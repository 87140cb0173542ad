package tutorial

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/learnopengl-go/learnopengl/lib/rendering"
	"github.com/learnopengl-go/learnopengl/lib/rendering/vertex"
)

var texturedLayout = vertex.Layout{Components: []int32{3, 3, 2}}

type textureScene struct {
	*fileScene
	texture uint32
}

func setupTextures(env *Env) (Scene, error) {
	img, err := rendering.LoadImage(string(env.Cfg.Textures.Path), env.Cfg.Textures.FlipVertical)
	if err != nil {
		return nil, err
	}
	slog.Debug(fmt.Sprintf("texture %s: %dx%d %s", env.Cfg.Textures.Path, img.Width, img.Height, img.Format), slog.String("module", "tutorial"))

	fs, err := newFileScene(env, "texture.vs", "texture.fs")
	if err != nil {
		return nil, err
	}

	s := &textureScene{fileScene: fs}
	s.texture = rendering.UploadTexture(img, rendering.DefaultTextureParams())

	s.mesh = vertex.NewBuilder().
		VertexBuffer(TexturedRectangleVertices).
		ElementBuffer(RectangleIndices).
		Attributes(texturedLayout).
		Build()

	s.bindSampler()
	return s, nil
}

func (s *textureScene) bindSampler() {
	s.program.Use()
	s.program.SetInt("ourTexture", 0)
}

func (s *textureScene) Reload() error {
	err := s.fileScene.Reload()
	if err != nil {
		return err
	}
	s.bindSampler()
	return nil
}

func (s *textureScene) Draw(time.Duration) {
	rendering.BindTexture(0, s.texture)
	s.program.Use()
	s.mesh.Draw()
}

func (s *textureScene) Delete() {
	rendering.DeleteTexture(s.texture)
	s.fileScene.Delete()
}
