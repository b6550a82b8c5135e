package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the first object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Sphere    *geometry.Sphere
}

func hexColor(c core.Vec3) string {
	rgb := c.ToRGB()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of pixel (pixelX, pixelY), with
// row 0 at the top of the image, and reports the nearest sphere it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	width := sceneObj.SamplingConfig.Width
	height := sceneObj.SamplingConfig.Height

	u := (float64(pixelX) + 0.5) / float64(width)
	v := (float64(height-1-pixelY) + 0.5) / float64(height)
	ray := sceneObj.Camera.GetRay(u, v)

	hit, isHit := sceneObj.World.Hit(ray)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The hit record does not carry its sphere, so find the one at the same t
	result := InspectResult{Hit: true, HitRecord: hit}
	geometry.Walk(sceneObj.World, func(sphere *geometry.Sphere) {
		if result.Sphere != nil {
			return
		}
		if sphereHit, ok := sphere.Hit(ray); ok && sphereHit.T == hit.T {
			result.Sphere = sphere
		}
	})
	return result
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sc := sceneObj.SamplingConfig
	if pixelX < 0 || pixelX >= sc.Width || pixelY < 0 || pixelY >= sc.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	properties := map[string]interface{}{
		"material": materialProps,
	}
	if result.Sphere != nil {
		properties["geometry"] = map[string]interface{}{
			"center": vecArray(result.Sphere.Center),
			"radius": result.Sphere.Radius,
		}
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		Properties:   properties,
	})
}
