package renderer

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// frame holds the snapshot every pixel of one render reads from
type frame struct {
	scene         *scene.Scene
	cameraToWorld core.Matrix
	fovScale      float64
	aspect        float64
	width         int
	height        int
	config        Config
}

func newFrame(s *scene.Scene, width, height int, config Config) *frame {
	config.ShadowBias = max(config.ShadowBias, 0)
	return &frame{
		scene:         s,
		cameraToWorld: s.Camera.CameraToWorld(),
		fovScale:      s.Camera.FOVScale(),
		aspect:        float64(width) / float64(height),
		width:         width,
		height:        height,
		config:        config,
	}
}

// viewRay builds the primary ray through the center of pixel index
func (f *frame) viewRay(index int) core.Ray {
	px := index % f.width
	py := index / f.width

	x := (2*((float64(px)+0.5)/float64(f.width)) - 1) * f.aspect * f.fovScale
	y := (1 - 2*((float64(py)+0.5)/float64(f.height))) * f.fovScale

	direction := core.NewVec3(x, y, 1).Normalize()
	direction = f.cameraToWorld.TransformVector(direction).Normalize()
	return core.NewRay(f.cameraToWorld.Translation, direction)
}

// shade returns the accumulated, unclamped color of pixel index and whether
// its view ray hit anything
func (f *frame) shade(index int) (core.Vec3, bool) {
	ray := f.viewRay(index)
	hit := f.scene.ClosestHit(ray)
	if !hit.DidHit {
		return core.Vec3{}, false
	}

	mat := f.scene.Material(hit.MaterialIndex)
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(f.config.ShadowBias))

	var color core.Vec3
	for _, light := range f.scene.Lights {
		toLight := light.DirectionToLight(shadowOrigin)
		distance := toLight.Length()
		lightDir := toLight.Normalize()

		if f.config.Shadows {
			shadowRay := core.NewRay(shadowOrigin, lightDir)
			shadowRay.TMax = distance
			if f.scene.DoesHit(shadowRay) {
				continue
			}
		}

		observedArea := hit.Normal.Dot(lightDir)

		switch f.config.Mode {
		case ObservedArea:
			if observedArea > 0 {
				color = color.Add(core.NewVec3(1, 1, 1).Multiply(observedArea))
			}
		case Radiance:
			color = color.Add(light.Radiance(hit.Point))
		case BRDF:
			color = color.Add(mat.Shade(hit, lightDir, ray.Direction))
		default:
			if observedArea > 0 {
				contribution := light.Radiance(hit.Point).
					MultiplyVec(mat.Shade(hit, lightDir, ray.Direction)).
					Multiply(observedArea)
				color = color.Add(contribution)
			}
		}
	}

	return color, true
}

// renderPixel shades pixel index and writes its packed color to fb
func (f *frame) renderPixel(index int, fb *FrameBuffer) bool {
	color, hit := f.shade(index)
	fb.Pixels[index] = core.PackRGB(color.MaxToOne())
	return hit
}
