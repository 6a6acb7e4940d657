package renderer

import (
	"fmt"

	"LightLab/internal/logger"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	maxDirectionalLights = 2
	maxSpotLights        = 2
	shadowTextureUnit    = 1
)

type gpuGeometry struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type OpenGLRenderer struct {
	surface
	Settings RenderSettings

	standardShader *Shader
	depthShader    *Shader
	lineShader     *Shader

	geometries map[*Geometry]*gpuGeometry
	shadowMaps [MaxShadowPasses]*ShadowMap

	lineVAO uint32
	lineVBO uint32

	initialized bool
}

func NewOpenGLRenderer(settings RenderSettings) *OpenGLRenderer {
	rend := &OpenGLRenderer{
		Settings:   settings,
		geometries: make(map[*Geometry]*gpuGeometry),
	}
	rend.SetShadowMap(settings.Shadows)
	return rend
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) error {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return fmt.Errorf("gl init: %v: %w", err, ErrRenderFailed)
	}

	var unwind Unwind
	defer unwind.Unwind()

	rend.standardShader = NewShader("standard", standardVertexShaderSource, standardFragmentShaderSource)
	rend.depthShader = NewShader("depth", depthVertexShaderSource, depthFragmentShaderSource)
	rend.lineShader = NewShader("line", lineVertexShaderSource, lineFragmentShaderSource)
	for _, shader := range []*Shader{rend.standardShader, rend.depthShader, rend.lineShader} {
		if err := shader.Compile(); err != nil {
			return fmt.Errorf("%v: %w", err, ErrRenderFailed)
		}
		unwind.Add(shader.Delete)
	}

	gl.GenVertexArrays(1, &rend.lineVAO)
	gl.GenBuffers(1, &rend.lineVBO)
	gl.BindVertexArray(rend.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	unwind.Add(func() {
		gl.DeleteBuffers(1, &rend.lineVBO)
		gl.DeleteVertexArrays(1, &rend.lineVAO)
	})

	if rend.Settings.MSAASamples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	if rend.Settings.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	rend.SetSize(width, height)
	if err := checkGLError("init"); err != nil {
		return err
	}

	unwind.Discard()
	rend.initialized = true
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

func (rend *OpenGLRenderer) Render(scene *Scene, camera *Camera) error {
	if !rend.initialized {
		return fmt.Errorf("opengl renderer used before Init: %w", ErrRenderFailed)
	}
	if scene == nil || camera == nil {
		return nil
	}

	for _, mesh := range scene.Meshes() {
		if err := rend.upload(mesh.Geometry); err != nil {
			return err
		}
	}

	plan := PlanShadows(scene, rend.shadows)
	passIndex := make(map[*Light]int32, len(plan.Passes))
	for i, pass := range plan.Passes {
		if err := rend.renderShadowPass(i, pass); err != nil {
			return err
		}
		passIndex[pass.Light] = int32(i)
	}

	fbWidth, fbHeight := rend.DrawingBufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, fbWidth, fbHeight)
	// The overlay leaves depth testing off.
	gl.Enable(gl.DEPTH_TEST)
	bg := scene.Background
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProjection := camera.GetViewProjection()
	shader := rend.standardShader
	shader.Use()
	u := shader.Uniforms()
	u.SetMat4("viewProjection", viewProjection)
	u.SetVec3("viewPos", camera.Position)
	exposure := rend.Settings.Exposure
	if exposure <= 0 {
		exposure = 1
	}
	u.SetFloat("exposure", exposure)
	rend.setLightUniforms(u, scene.Lights(), passIndex)
	rend.setShadowUniforms(u, plan)

	for _, mesh := range scene.Meshes() {
		if !mesh.Visible || mesh.Geometry == nil {
			continue
		}
		material := mesh.Material
		if material == nil {
			material = NewStandardMaterial()
		}
		u.SetMat4("model", mesh.ModelMatrix())
		u.SetVec3("baseColor", material.Color)
		u.SetFloat("roughness", material.Roughness)
		u.SetFloat("metalness", material.Metalness)
		u.SetBool("receiveShadow", mesh.ReceiveShadow && !plan.Empty())

		gpu := rend.geometries[mesh.Geometry]
		gl.BindVertexArray(gpu.vao)
		gl.DrawElements(gl.TRIANGLES, gpu.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	rend.renderHelpers(scene.Helpers(), viewProjection)
	return checkGLError("render")
}

func (rend *OpenGLRenderer) upload(geometry *Geometry) error {
	if geometry == nil {
		return nil
	}
	if _, ok := rend.geometries[geometry]; ok {
		return nil
	}
	data := geometry.InterleavedData()
	if len(data) == 0 || len(geometry.Indices) == 0 {
		return fmt.Errorf("empty geometry: %w", ErrInvalidGeometry)
	}

	gpu := &gpuGeometry{indexCount: int32(len(geometry.Indices))}
	gl.GenVertexArrays(1, &gpu.vao)
	gl.BindVertexArray(gpu.vao)

	gl.GenBuffers(1, &gpu.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gpu.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geometry.Indices)*4, gl.Ptr(geometry.Indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	rend.geometries[geometry] = gpu
	logger.Log.Debug("Geometry uploaded",
		zap.Int("vertices", geometry.VertexCount()), zap.Int32("indices", gpu.indexCount))
	return checkGLError("upload")
}

func (rend *OpenGLRenderer) renderShadowPass(index int, pass ShadowPass) error {
	size := pass.Light.Shadow.MapSize
	if size <= 0 {
		size = DefaultShadowMapSize
	}
	sm := rend.shadowMaps[index]
	if sm == nil || sm.Size != size {
		if sm != nil {
			sm.Destroy()
		}
		var err error
		if sm, err = NewShadowMap(size); err != nil {
			return err
		}
		rend.shadowMaps[index] = sm
		logger.Log.Debug("Shadow map allocated", zap.String("light", pass.Light.Name), zap.Int32("size", size))
	}

	sm.Begin()
	rend.depthShader.Use()
	u := rend.depthShader.Uniforms()
	// Front face culling keeps acne off lit surfaces.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	for _, mesh := range pass.Casters {
		gpu, ok := rend.geometries[mesh.Geometry]
		if !ok {
			continue
		}
		u.SetMat4("lightMVP", pass.LightSpace.Mul4(mesh.ModelMatrix()))
		gl.BindVertexArray(gpu.vao)
		gl.DrawElements(gl.TRIANGLES, gpu.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

func (rend *OpenGLRenderer) setLightUniforms(u *UniformCache, lights []*Light, passIndex map[*Light]int32) {
	var ambient mgl32.Vec3
	var hemisphere *Light
	var dirCount, spotCount int32

	for _, l := range lights {
		radiance := l.Color.Mul(l.Intensity)
		shadow, ok := passIndex[l]
		if !ok {
			shadow = -1
		}
		switch l.Kind {
		case AMBIENT_LIGHT:
			ambient = ambient.Add(radiance)
		case HEMISPHERE_LIGHT:
			if hemisphere == nil {
				hemisphere = l
			}
		case DIRECTIONAL_LIGHT:
			if dirCount == maxDirectionalLights {
				continue
			}
			u.SetVec3(fmt.Sprintf("dirDirection[%d]", dirCount), l.Direction())
			u.SetVec3(fmt.Sprintf("dirColor[%d]", dirCount), radiance)
			u.SetInt(fmt.Sprintf("dirShadow[%d]", dirCount), shadow)
			dirCount++
		case SPOT_LIGHT:
			if spotCount == maxSpotLights {
				continue
			}
			u.SetVec3(fmt.Sprintf("spotPosition[%d]", spotCount), l.Position)
			u.SetVec3(fmt.Sprintf("spotDirection[%d]", spotCount), l.Direction())
			u.SetVec3(fmt.Sprintf("spotColor[%d]", spotCount), radiance)
			u.SetFloat(fmt.Sprintf("spotDistance[%d]", spotCount), l.Distance)
			u.SetFloat(fmt.Sprintf("spotDecay[%d]", spotCount), l.Decay)
			u.SetFloat(fmt.Sprintf("spotCosOuter[%d]", spotCount), math32.Cos(l.Angle))
			u.SetFloat(fmt.Sprintf("spotCosInner[%d]", spotCount), math32.Cos(l.Angle*(1-l.Penumbra)))
			u.SetInt(fmt.Sprintf("spotShadow[%d]", spotCount), shadow)
			spotCount++
		}
	}

	u.SetVec3("ambientColor", ambient)
	u.SetInt("dirCount", dirCount)
	u.SetInt("spotCount", spotCount)
	u.SetBool("hasHemisphere", hemisphere != nil)
	if hemisphere != nil {
		u.SetVec3("hemiSky", hemisphere.Color.Mul(hemisphere.Intensity))
		u.SetVec3("hemiGround", hemisphere.GroundColor.Mul(hemisphere.Intensity))
	}
}

func (rend *OpenGLRenderer) setShadowUniforms(u *UniformCache, plan ShadowPlan) {
	u.SetInt("shadowType", int32(plan.Settings.Type))
	for i := 0; i < MaxShadowPasses; i++ {
		unit := uint32(shadowTextureUnit + i)
		u.SetInt(fmt.Sprintf("shadowMap%d", i), int32(unit))

		lightSpace := mgl32.Ident4()
		if i < len(plan.Passes) {
			pass := plan.Passes[i]
			lightSpace = pass.LightSpace
			rend.shadowMaps[i].Bind(unit)
			u.SetFloat(fmt.Sprintf("shadowRadius[%d]", i), pass.Light.Shadow.Radius)
			u.SetFloat(fmt.Sprintf("shadowBias[%d]", i), pass.Light.Shadow.Bias)
			u.SetFloat(fmt.Sprintf("shadowTexel[%d]", i), 1/float32(rend.shadowMaps[i].Size))
		} else if rend.shadowMaps[i] != nil {
			rend.shadowMaps[i].Bind(unit)
		}
		u.SetMat4(fmt.Sprintf("lightSpace%d", i), lightSpace)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

func (rend *OpenGLRenderer) renderHelpers(helpers []*Helper, viewProjection mgl32.Mat4) {
	if len(helpers) == 0 {
		return
	}
	rend.lineShader.Use()
	u := rend.lineShader.Uniforms()
	u.SetMat4("viewProjection", viewProjection)
	gl.BindVertexArray(rend.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.lineVBO)
	for _, h := range helpers {
		if !h.Visible {
			continue
		}
		lines := h.Lines()
		if len(lines) == 0 {
			continue
		}
		u.SetVec3("lineColor", h.Color)
		gl.BufferData(gl.ARRAY_BUFFER, len(lines)*3*4, gl.Ptr(lines), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
	}
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) Cleanup() {
	for geometry, gpu := range rend.geometries {
		gl.DeleteVertexArrays(1, &gpu.vao)
		gl.DeleteBuffers(1, &gpu.vbo)
		gl.DeleteBuffers(1, &gpu.ebo)
		delete(rend.geometries, geometry)
	}
	for i, sm := range rend.shadowMaps {
		if sm != nil {
			sm.Destroy()
			rend.shadowMaps[i] = nil
		}
	}
	if rend.lineVAO != 0 {
		gl.DeleteBuffers(1, &rend.lineVBO)
		gl.DeleteVertexArrays(1, &rend.lineVAO)
		rend.lineVAO, rend.lineVBO = 0, 0
	}
	for _, shader := range []*Shader{rend.standardShader, rend.depthShader, rend.lineShader} {
		if shader != nil {
			shader.Delete()
		}
	}
	rend.initialized = false
	logger.Log.Info("OpenGL render cleaned up")
}

// checkGLError drains the GL error queue. Running out of memory is fatal;
// anything else is logged and rendering carries on.
func checkGLError(stage string) error {
	var fatal error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if code == gl.OUT_OF_MEMORY {
			fatal = fmt.Errorf("%s: out of GPU memory: %w", stage, ErrRenderFailed)
			continue
		}
		logger.Log.Warn("OpenGL error", zap.String("stage", stage), zap.Uint32("code", code))
	}
	return fatal
}
