package renderer

import (
	"fmt"
	"strings"

	"LightLab/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

func NewShader(name, vertexSource, fragmentSource string) *Shader {
	return &Shader{Name: name, vertexSource: vertexSource, fragmentSource: fragmentSource}
}

func (shader *Shader) Compile() error {
	vertexShader, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	fragmentShader, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	program, err := GenShaderProgram(vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	logger.Log.Debug("Shader program linked", zap.String("shader", shader.Name), zap.Uint32("program", program))
	return nil
}

func (shader *Shader) IsValid() bool {
	return shader != nil && shader.program != 0
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Uniforms() *UniformCache {
	return shader.uniforms
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.Uint32("shader type", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile shader type %d: %s", shaderType, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

var standardVertexShaderSource = `#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;
uniform mat4 lightSpace0;
uniform mat4 lightSpace1;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoord;
out vec4 LightPos0;
out vec4 LightPos1;

void main() {
    vec4 world = model * vec4(inPosition, 1.0);
    FragPos = world.xyz;
    Normal = mat3(transpose(inverse(model))) * inNormal;
    TexCoord = inTexCoord;
    LightPos0 = lightSpace0 * world;
    LightPos1 = lightSpace1 * world;
    gl_Position = viewProjection * world;
}
` + "\x00"

var standardFragmentShaderSource = `#version 410 core

in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoord;
in vec4 LightPos0;
in vec4 LightPos1;

out vec4 FragColor;

#define MAX_DIR_LIGHTS 2
#define MAX_SPOT_LIGHTS 2
#define PI 3.14159265359

uniform vec3 viewPos;
uniform vec3 baseColor;
uniform float roughness;
uniform float metalness;
uniform float exposure;

uniform vec3 ambientColor;

uniform bool hasHemisphere;
uniform vec3 hemiSky;
uniform vec3 hemiGround;

uniform int dirCount;
uniform vec3 dirDirection[MAX_DIR_LIGHTS];
uniform vec3 dirColor[MAX_DIR_LIGHTS];
uniform int dirShadow[MAX_DIR_LIGHTS];

uniform int spotCount;
uniform vec3 spotPosition[MAX_SPOT_LIGHTS];
uniform vec3 spotDirection[MAX_SPOT_LIGHTS];
uniform vec3 spotColor[MAX_SPOT_LIGHTS];
uniform float spotDistance[MAX_SPOT_LIGHTS];
uniform float spotDecay[MAX_SPOT_LIGHTS];
uniform float spotCosOuter[MAX_SPOT_LIGHTS];
uniform float spotCosInner[MAX_SPOT_LIGHTS];
uniform int spotShadow[MAX_SPOT_LIGHTS];

// 0 basic, 1 pcf, 2 pcf soft
uniform int shadowType;
uniform bool receiveShadow;
uniform sampler2DShadow shadowMap0;
uniform sampler2DShadow shadowMap1;
uniform float shadowRadius[2];
uniform float shadowBias[2];
uniform float shadowTexel[2];

float sampleShadow(int index, vec3 p) {
    if (index == 0) {
        return texture(shadowMap0, p);
    }
    return texture(shadowMap1, p);
}

float shadowFactor(int index) {
    if (!receiveShadow || index < 0) {
        return 1.0;
    }
    vec4 lp = index == 0 ? LightPos0 : LightPos1;
    vec3 p = lp.xyz / lp.w;
    p = p * 0.5 + 0.5;
    if (p.z > 1.0 || p.x < 0.0 || p.x > 1.0 || p.y < 0.0 || p.y > 1.0) {
        return 1.0;
    }
    p.z -= shadowBias[index];

    if (shadowType == 0) {
        return sampleShadow(index, p);
    }

    int kernel = shadowType == 2 ? 2 : 1;
    float step = shadowTexel[index] * max(shadowRadius[index], 1.0);
    float sum = 0.0;
    float count = 0.0;
    for (int x = -kernel; x <= kernel; x++) {
        for (int y = -kernel; y <= kernel; y++) {
            sum += sampleShadow(index, vec3(p.xy + vec2(float(x), float(y)) * step, p.z));
            count += 1.0;
        }
    }
    return sum / count;
}

float distributionGGX(float NdotH, float rough) {
    float a = rough * rough;
    float a2 = a * a;
    float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d + 1e-5);
}

float geometrySmith(float NdotV, float NdotL, float rough) {
    float k = (rough + 1.0) * (rough + 1.0) / 8.0;
    float gv = NdotV / (NdotV * (1.0 - k) + k);
    float gl = NdotL / (NdotL * (1.0 - k) + k);
    return gv * gl;
}

vec3 brdf(vec3 N, vec3 V, vec3 L, vec3 radiance) {
    vec3 H = normalize(V + L);
    float NdotL = max(dot(N, L), 0.0);
    float NdotV = max(dot(N, V), 1e-4);
    float NdotH = max(dot(N, H), 0.0);
    float rough = clamp(roughness, 0.04, 1.0);

    vec3 F0 = mix(vec3(0.04), baseColor, metalness);
    vec3 F = F0 + (1.0 - F0) * pow(1.0 - max(dot(H, V), 0.0), 5.0);
    vec3 specular = distributionGGX(NdotH, rough) * geometrySmith(NdotV, NdotL, rough) * F / (4.0 * NdotV * NdotL + 1e-4);
    vec3 kd = (vec3(1.0) - F) * (1.0 - metalness);
    return (kd * baseColor / PI + specular) * radiance * NdotL * PI;
}

void main() {
    vec3 N = normalize(Normal);
    vec3 V = normalize(viewPos - FragPos);
    vec3 diffuseColor = baseColor * (1.0 - metalness);

    vec3 color = ambientColor * diffuseColor;

    if (hasHemisphere) {
        float w = 0.5 * dot(N, vec3(0.0, 1.0, 0.0)) + 0.5;
        color += mix(hemiGround, hemiSky, w) * diffuseColor;
    }

    for (int i = 0; i < dirCount; i++) {
        vec3 L = normalize(-dirDirection[i]);
        color += brdf(N, V, L, dirColor[i]) * shadowFactor(dirShadow[i]);
    }

    for (int i = 0; i < spotCount; i++) {
        vec3 toLight = spotPosition[i] - FragPos;
        float d = length(toLight);
        vec3 L = toLight / d;
        float cosAngle = dot(-L, normalize(spotDirection[i]));
        float cone = smoothstep(spotCosOuter[i], spotCosInner[i], cosAngle);
        float atten = 1.0;
        if (spotDistance[i] > 0.0) {
            atten = pow(clamp(1.0 - d / spotDistance[i], 0.0, 1.0), spotDecay[i]);
        }
        color += brdf(N, V, L, spotColor[i] * cone * atten) * shadowFactor(spotShadow[i]);
    }

    color *= exposure;
    color = pow(color, vec3(1.0 / 2.2));
    FragColor = vec4(color, 1.0);
}
` + "\x00"

var depthVertexShaderSource = `#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 lightMVP;
void main() {
    gl_Position = lightMVP * vec4(inPosition, 1.0);
}
` + "\x00"

var depthFragmentShaderSource = `#version 410 core
void main() {}
` + "\x00"

var lineVertexShaderSource = `#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 viewProjection;
void main() {
    gl_Position = viewProjection * vec4(inPosition, 1.0);
}
` + "\x00"

var lineFragmentShaderSource = `#version 410 core
uniform vec3 lineColor;
out vec4 FragColor;
void main() {
    FragColor = vec4(lineColor, 1.0);
}
` + "\x00"
