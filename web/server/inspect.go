package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	OrderKey     int                    `json:"orderKey"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced pixel color
	Properties   map[string]interface{} `json:"properties"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(m *material.Material) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{
		"ke":        vecJSON(m.Ke),
		"ka":        vecJSON(m.Ka),
		"kd":        vecJSON(m.Kd),
		"ks":        vecJSON(m.Ks),
		"kr":        vecJSON(m.Kr),
		"kt":        vecJSON(m.Kt),
		"shininess": m.Shininess,
		"index":     m.Index,
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(m.Kd.X*255), int(m.Kd.Y*255), int(m.Kd.Z*255)),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(obj material.Object) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := obj.(type) {
	case *geometry.Box:
		properties["center"] = vecJSON(geom.Center)
		properties["size"] = vecJSON(geom.Size)
		properties["exactNormals"] = geom.ExactNormals
		return "box", properties

	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecJSON(geom.Point)
		properties["normal"] = vecJSON(geom.Normal)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the primary ray through one pixel and describes the
// first surface it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, s.logger)
	if err != nil {
		writeError(w, pipelineErrorStatus(err), err.Error())
		return
	}
	bounds := pipeline.Raytracer.Bounds()

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, bounds.Dx()-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, bounds.Dy()-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	x, y := renderer.PixelToImagePlane(pixelX, pixelY, bounds.Dx(), bounds.Dy())
	ray := pipeline.Scene.Camera().RayThrough(x, y)
	hit, isHit := pipeline.Scene.Intersect(ray)
	if !isHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Object)
	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecJSON(hit.Point),
		Normal:       vecJSON(hit.Normal),
		Distance:     hit.T,
		Color:        vecJSON(pipeline.Tracer.Trace(pipeline.Scene, x, y)),
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Material),
			"geometry": geometryProps,
		},
	}
	if hit.Object != nil {
		response.OrderKey = hit.Object.OrderKey()
	}

	writeJSON(w, http.StatusOK, response)
}
