package graphics

import (
	"fmt"

	"spritegl/internal/logging"
	"spritegl/internal/platform"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// RequiredFunctions are the entry points the sprite pipeline cannot run without.
var RequiredFunctions = []string{
	"glDebugMessageCallback",
	"glCreateProgram",
	"glBindBufferBase",
	"glBufferSubData",
	"glDrawArraysInstanced",
	"glGenVertexArrays",
	"glTexImage2D",
	"glUniform2fv",
}

// InitBindings resolves every OpenGL function through loader. The context
// must be current on the calling thread.
func InitBindings(loader *platform.Loader) error {
	if err := loader.Require(RequiredFunctions...); err != nil {
		return err
	}
	if err := gl.InitWithProcAddrFunc(loader.Load); err != nil {
		return fmt.Errorf("could not initialise OpenGL bindings: %w", err)
	}

	logging.Logger().Info("OpenGL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}

// ContextInfo describes the current context.
type ContextInfo struct {
	Vendor, Renderer, Version, GLSL string
	Major, Minor                    int32
	CoreProfile, Debug              bool
}

// QueryContext reads the properties of the current context.
func QueryContext() ContextInfo {
	info := ContextInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	gl.GetIntegerv(gl.MAJOR_VERSION, &info.Major)
	gl.GetIntegerv(gl.MINOR_VERSION, &info.Minor)

	var mask, flags int32
	gl.GetIntegerv(gl.CONTEXT_PROFILE_MASK, &mask)
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	info.CoreProfile = mask&gl.CONTEXT_CORE_PROFILE_BIT != 0
	info.Debug = flags&gl.CONTEXT_FLAG_DEBUG_BIT != 0
	return info
}
