package scene

import (
	"fmt"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info   SceneInfo
	create func() *Scene
}

var builtInScenes = []sceneEntry{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Diffuse, metal and glass spheres on a ground sphere under the sun",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			DisplayName: "Sphere Grid",
			Description: "10x10 grid of spheres with seeded random materials",
		},
		create: func() *Scene { return NewSphereGridScene(10, 1) },
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			DisplayName: "Facing Mirrors",
			Description: "Two facing mirrors that trap light until the bounce cap",
		},
		create: NewMirrorsScene,
	},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	return scenes
}

// Create builds the named built-in scene. Names are matched case-insensitively.
func Create(name string) (*Scene, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range builtInScenes {
		if entry.info.ID == id {
			return entry.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}
