package shader

import (
	"strings"
)

// fakeBackend records every call and compiles any stage whose source
// contains "main". Uniforms listed in uniforms resolve; all others are missing.
type fakeBackend struct {
	next uint32

	sources  map[uint32]string
	kinds    map[uint32]Stage
	attached map[uint32][]uint32
	live     map[uint32]bool // stages and programs not yet deleted

	failLink bool
	uniforms map[string]int32

	compiled       []Stage
	deletedStages  []uint32
	deletedProgram []uint32
	used           []uint32
	locationCalls  map[string]int

	vec4 map[int32][4]float32
	ints map[int32]int32
	intv map[int32][]int32
	mat4 map[int32][16]float32
}

func newFakeBackend(uniforms ...string) *fakeBackend {
	b := &fakeBackend{
		sources:       make(map[uint32]string),
		kinds:         make(map[uint32]Stage),
		attached:      make(map[uint32][]uint32),
		live:          make(map[uint32]bool),
		uniforms:      make(map[string]int32),
		locationCalls: make(map[string]int),
		vec4:          make(map[int32][4]float32),
		ints:          make(map[int32]int32),
		intv:          make(map[int32][]int32),
		mat4:          make(map[int32][16]float32),
	}
	for i, name := range uniforms {
		b.uniforms[name] = int32(i)
	}
	return b
}

func (b *fakeBackend) handle() uint32 {
	b.next++
	b.live[b.next] = true
	return b.next
}

func (b *fakeBackend) CreateShaderStage(stage Stage) uint32 {
	h := b.handle()
	b.kinds[h] = stage
	return h
}

func (b *fakeBackend) SetStageSource(stage uint32, source string) { b.sources[stage] = source }

func (b *fakeBackend) CompileStage(stage uint32) bool {
	b.compiled = append(b.compiled, b.kinds[stage])
	return strings.Contains(b.sources[stage], "main")
}

func (b *fakeBackend) StageLog(stage uint32) string {
	return "0:1(1): error: no main function\n"
}

func (b *fakeBackend) DeleteStage(stage uint32) {
	delete(b.live, stage)
	b.deletedStages = append(b.deletedStages, stage)
}

func (b *fakeBackend) CreateProgram() uint32 { return b.handle() }

func (b *fakeBackend) AttachStage(program, stage uint32) {
	b.attached[program] = append(b.attached[program], stage)
}

func (b *fakeBackend) LinkProgram(program uint32) bool {
	return !b.failLink && len(b.attached[program]) == 2
}

func (b *fakeBackend) ProgramLog(program uint32) string { return "link error: missing stage" }

func (b *fakeBackend) ValidateProgram(program uint32) bool { return true }

func (b *fakeBackend) DeleteProgram(program uint32) {
	delete(b.live, program)
	b.deletedProgram = append(b.deletedProgram, program)
}

func (b *fakeBackend) UseProgram(program uint32) { b.used = append(b.used, program) }

func (b *fakeBackend) UniformLocation(program uint32, name string) int32 {
	b.locationCalls[name]++
	if loc, ok := b.uniforms[name]; ok {
		return loc
	}
	return MissingLocation
}

func (b *fakeBackend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	b.vec4[location] = [4]float32{v0, v1, v2, v3}
}

func (b *fakeBackend) Uniform1i(location int32, v int32) { b.ints[location] = v }

func (b *fakeBackend) Uniform1iv(location int32, v []int32) {
	b.intv[location] = append([]int32(nil), v...)
}

func (b *fakeBackend) UniformMatrix4f(location int32, m *[16]float32) { b.mat4[location] = *m }

func (b *fakeBackend) totalLocationCalls() int {
	n := 0
	for _, c := range b.locationCalls {
		n += c
	}
	return n
}
