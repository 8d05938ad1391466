package shader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const trivialShader = "#shader vertex\nvoid main(){}\n#shader fragment\nvoid main(){}\n"

func writeShader(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Basic.shader")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write shader: %v", err)
	}
	return path
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestNewTrivialProgram(t *testing.T) {
	b := newFakeBackend()
	log, logs := observed()

	p := New(b, writeShader(t, trivialShader), WithLogger(log))
	defer p.Close()

	if err := p.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() == 0 {
		t.Fatal("expected a program handle")
	}
	if len(b.compiled) != 2 || b.compiled[0] != Vertex || b.compiled[1] != Fragment {
		t.Errorf("expected vertex then fragment compile, got %v", b.compiled)
	}
	if got := b.sources[1]; got != "void main(){}\n" {
		t.Errorf("vertex source = %q", got)
	}
	if got := b.sources[2]; got != "void main(){}\n" {
		t.Errorf("fragment source = %q", got)
	}

	// Stages never outlive the build.
	if len(b.deletedStages) != 2 {
		t.Errorf("expected both stages deleted, got %v", b.deletedStages)
	}
	for h := range b.live {
		if h != p.ID() {
			t.Errorf("handle %d still live after build", h)
		}
	}

	if loc := p.Location("u_Color"); loc != MissingLocation {
		t.Errorf("Location(u_Color) = %d, want %d", loc, MissingLocation)
	}
	if n := logs.FilterMessage("uniform not found").Len(); n != 1 {
		t.Errorf("expected 1 missing-uniform warning, got %d", n)
	}
}

func TestNewOnlyVertexSection(t *testing.T) {
	b := newFakeBackend()
	log, logs := observed()

	p := New(b, writeShader(t, "#shader vertex\nvoid main(){}\n"), WithLogger(log))
	defer p.Close()

	var compileErr *CompileError
	if !errors.As(p.Err(), &compileErr) {
		t.Fatalf("expected a CompileError, got %v", p.Err())
	}
	if compileErr.Stage != Fragment {
		t.Errorf("failed stage = %v, want fragment", compileErr.Stage)
	}

	failures := logs.FilterMessage("failed to compile shader").All()
	if len(failures) != 1 {
		t.Fatalf("expected 1 compile diagnostic, got %d", len(failures))
	}
	if stage := failures[0].ContextMap()["stage"]; stage != "fragment" {
		t.Errorf("diagnostic stage = %v, want fragment", stage)
	}

	// Lenient mode still produces a program; linking reports the missing stage.
	if p.ID() == 0 {
		t.Error("expected a program handle in lenient mode")
	}
	var linkErr *LinkError
	if !errors.As(p.Err(), &linkErr) {
		t.Errorf("expected a LinkError, got %v", p.Err())
	}
	if len(b.attached[p.ID()]) != 1 {
		t.Errorf("expected only the vertex stage attached, got %v", b.attached[p.ID()])
	}
	for h := range b.live {
		if h != p.ID() {
			t.Errorf("stage %d leaked", h)
		}
	}
}

func TestNewFailFast(t *testing.T) {
	b := newFakeBackend()
	log, _ := observed()

	p := New(b, writeShader(t, "#shader fragment\nvoid main(){}\n"), WithLogger(log), FailFast())

	var compileErr *CompileError
	if !errors.As(p.Err(), &compileErr) || compileErr.Stage != Vertex {
		t.Fatalf("expected vertex CompileError, got %v", p.Err())
	}
	if p.ID() != 0 {
		t.Errorf("expected no program, got %d", p.ID())
	}
	if len(b.compiled) != 1 {
		t.Errorf("expected to stop after the vertex stage, compiled %v", b.compiled)
	}
	if len(b.live) != 0 {
		t.Errorf("expected no live handles, got %v", b.live)
	}
	if loc := p.Location("u_Color"); loc != MissingLocation {
		t.Errorf("Location on empty program = %d", loc)
	}
	if len(b.locationCalls) != 0 {
		t.Error("expected no backend query without a program")
	}
}

func TestNewFailFastLinkError(t *testing.T) {
	b := newFakeBackend()
	b.failLink = true
	log, _ := observed()

	p := New(b, writeShader(t, trivialShader), WithLogger(log), FailFast())

	var linkErr *LinkError
	if !errors.As(p.Err(), &linkErr) {
		t.Fatalf("expected LinkError, got %v", p.Err())
	}
	if p.ID() != 0 || len(b.live) != 0 {
		t.Errorf("expected program released, id=%d live=%v", p.ID(), b.live)
	}
}

func TestNewMissingFile(t *testing.T) {
	b := newFakeBackend()
	log, logs := observed()

	p := New(b, filepath.Join(t.TempDir(), "nope.shader"), WithLogger(log))
	defer p.Close()

	if p.Err() == nil {
		t.Fatal("expected an error")
	}
	if logs.FilterMessage("failed to read shader source").Len() != 1 {
		t.Error("expected a read diagnostic")
	}
	if logs.FilterMessage("failed to compile shader").Len() != 2 {
		t.Error("expected both empty stages to fail to compile")
	}
}

func TestCompileFromSource(t *testing.T) {
	b := newFakeBackend("u_Color")
	p := Compile(b, SplitString(trivialShader), WithLogger(zap.NewNop()))
	defer p.Close()

	if p.Err() != nil {
		t.Fatalf("unexpected error: %v", p.Err())
	}
	if p.Path() != "" {
		t.Errorf("expected empty path, got %q", p.Path())
	}
	if err := p.Reload(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Reload() = %v, want ErrNoSource", err)
	}
}

func TestBindUnbindClose(t *testing.T) {
	b := newFakeBackend()
	p := Compile(b, SplitString(trivialShader), WithLogger(zap.NewNop()))
	id := p.ID()

	p.Bind()
	p.Unbind()
	if len(b.used) != 2 || b.used[0] != id || b.used[1] != 0 {
		t.Errorf("UseProgram calls = %v, want [%d 0]", b.used, id)
	}

	p.Close()
	p.Close()
	if len(b.deletedProgram) != 1 || b.deletedProgram[0] != id {
		t.Errorf("DeleteProgram calls = %v, want exactly [%d]", b.deletedProgram, id)
	}
	if p.ID() != 0 {
		t.Error("expected handle cleared after Close")
	}
	if loc := p.Location("u_Color"); loc != MissingLocation {
		t.Errorf("Location after Close = %d", loc)
	}
}

func TestLocationCache(t *testing.T) {
	b := newFakeBackend("u_Texture", "u_Color")
	log, logs := observed()
	p := Compile(b, SplitString(trivialShader), WithLogger(log))

	for i := 0; i < 5; i++ {
		if loc := p.Location("u_Color"); loc != 1 {
			t.Fatalf("Location(u_Color) = %d, want 1", loc)
		}
		if loc := p.Location("u_Missing"); loc != MissingLocation {
			t.Fatalf("Location(u_Missing) = %d", loc)
		}
	}

	if b.locationCalls["u_Color"] != 1 {
		t.Errorf("u_Color queried %d times, want 1", b.locationCalls["u_Color"])
	}
	if b.locationCalls["u_Missing"] != 1 {
		t.Errorf("u_Missing queried %d times, want 1", b.locationCalls["u_Missing"])
	}
	if n := logs.FilterMessage("uniform not found").Len(); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestSetters(t *testing.T) {
	b := newFakeBackend("u_Texture", "u_Color", "u_MVP", "u_Textures")
	p := Compile(b, SplitString(trivialShader), WithLogger(zap.NewNop()))
	p.Bind()

	p.SetVec4("u_Color", .8, .3, .8, 1.0)
	if got := b.vec4[1]; got != [4]float32{.8, .3, .8, 1.0} {
		t.Errorf("u_Color = %v", got)
	}

	p.SetInt("u_Texture", 0)
	if got, ok := b.ints[0]; !ok || got != 0 {
		t.Errorf("u_Texture = %v (set=%v)", got, ok)
	}

	p.SetInts("u_Textures", []int32{0, 1, 2})
	if got := b.intv[3]; len(got) != 3 || got[2] != 2 {
		t.Errorf("u_Textures = %v", got)
	}

	mvp := mgl32.Ortho(0, 960, 0, 540, -1, 1).Mul4(mgl32.Translate3D(-100, 0, 0))
	p.SetMat4("u_MVP", mvp)
	if got := b.mat4[2]; got != [16]float32(mvp) {
		t.Errorf("u_MVP = %v, want %v", got, mvp)
	}

	if got := b.totalLocationCalls(); got != 4 {
		t.Errorf("expected 4 location queries, got %d", got)
	}
}

func TestSettersSkipMissingUniform(t *testing.T) {
	b := newFakeBackend()
	p := Compile(b, SplitString(trivialShader), WithLogger(zap.NewNop()))

	p.SetVec4("u_Color", 1, 1, 1, 1)
	p.SetInt("u_Texture", 3)
	p.SetMat4("u_MVP", mgl32.Ident4())
	p.SetInts("u_Textures", []int32{1})

	if len(b.vec4)+len(b.ints)+len(b.mat4)+len(b.intv) != 0 {
		t.Error("expected no uniform uploads for missing locations")
	}
}

func TestReload(t *testing.T) {
	b := newFakeBackend("u_Color")
	log, logs := observed()
	path := writeShader(t, trivialShader)

	p := New(b, path, WithLogger(log))
	defer p.Close()
	first := p.ID()
	p.Location("u_Color")

	// A broken edit keeps the running program.
	if err := os.WriteFile(path, []byte("#shader vertex\nvoid main(){}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if p.ID() != first || p.Generation() != 1 {
		t.Errorf("program replaced by failed reload: id=%d gen=%d", p.ID(), p.Generation())
	}
	if logs.FilterMessage("shader reload failed, keeping previous program").Len() != 1 {
		t.Error("expected reload failure diagnostic")
	}

	if err := os.WriteFile(path, []byte(trivialShader), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if p.ID() == first {
		t.Error("expected a new program handle")
	}
	if p.Generation() != 2 {
		t.Errorf("generation = %d, want 2", p.Generation())
	}
	if b.live[first] {
		t.Error("previous program not released")
	}

	// The cache belongs to the previous generation.
	p.Location("u_Color")
	if b.locationCalls["u_Color"] != 2 {
		t.Errorf("expected location re-queried after reload, got %d queries", b.locationCalls["u_Color"])
	}
}

func TestReloadMissingFile(t *testing.T) {
	b := newFakeBackend()
	log, logs := observed()
	path := writeShader(t, trivialShader)

	p := New(b, path, WithLogger(log))
	defer p.Close()
	first := p.ID()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Reload() = %v, want a not-exist error", err)
	}
	if p.ID() != first {
		t.Errorf("program replaced by failed reload: id=%d", p.ID())
	}

	failures := logs.FilterMessage("shader reload failed, keeping previous program").FilterField(zap.String("path", path)).All()
	if len(failures) != 1 {
		t.Fatalf("expected 1 reload diagnostic, got %d", len(failures))
	}
	if failures[0].Level != zapcore.WarnLevel {
		t.Errorf("diagnostic level = %v, want warn", failures[0].Level)
	}
}
