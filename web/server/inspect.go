package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord material.HitRecord
	Shape     geometry.Shape // The shape that was hit, nil if it could not be identified
}

func hexColor(c core.Color) string {
	rgb := c.ToRGB8()
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat *material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch mat.Kind {
	case material.KindLambertian:
		properties["albedo"] = [3]float32{mat.Albedo.R, mat.Albedo.G, mat.Albedo.B}
		properties["color"] = hexColor(mat.Albedo)
	case material.KindMetal:
		properties["albedo"] = [3]float32{mat.Albedo.R, mat.Albedo.G, mat.Albedo.B}
		properties["color"] = hexColor(mat.Albedo)
		properties["fuzz"] = mat.Fuzz
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
	case material.KindAbsorber:
		properties["color"] = "#000000"
	}
	return mat.Kind.String(), properties
}

// extractGeometryInfo describes a shape for the inspector
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float32{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		if geom.Radius < 0 {
			properties["inverted"] = true
		}
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of pixel (pixelX, pixelY),
// counted from the top-left, and reports the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	cfg := sceneObj.SamplingConfig
	s := float32(pixelX) / float32(cfg.Width-1)
	t := float32(cfg.Height-1-pixelY) / float32(cfg.Height-1)

	// Fixed lens sample so the same pixel always inspects the same ray
	random := rand.New(rand.NewSource(0))
	ray := sceneObj.Camera.GetRay(s, t, random)

	hit, isHit := sceneObj.Hit(ray, 0.001, math32.MaxFloat32)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The scene does not report which shape was hit; find the one with the same t
	for _, shape := range sceneObj.Shapes {
		if shapeHit, ok := shape.Hit(ray, 0.001, hit.T); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	sceneObj, err := buildScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", -1, 0, sceneObj.SamplingConfig.Width-1)
	if err != nil || pixelX < 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, sceneObj.SamplingConfig.Height-1)
	if err != nil || pixelY < 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		json.NewEncoder(w).Encode(InspectResponse{Hit: false})
		return
	}

	hit := result.HitRecord
	materialType, materialProps := extractMaterialInfo(hit.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	json.NewEncoder(w).Encode(InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        [3]float32{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float32{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
