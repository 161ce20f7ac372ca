package hooklua

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hookline"
)

func newState(t *testing.T) (*lua.LState, *hookline.Registry) {
	t.Helper()

	L := lua.NewState()
	t.Cleanup(L.Close)

	reg := hookline.NewRegistry()
	Install(L, reg)
	return L, reg
}

func TestInstall_RegisterFromLua_ApplyFromGo(t *testing.T) {
	L, reg := newState(t)

	err := L.DoString(`
		hooks.add_filter("modify_number", 20, function(v) return v * 2 end)
		hooks.add_filter("modify_number", 10, function(v) return v + 5 end)
	`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	out, err := reg.ApplyFilters("modify_number", int64(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != int64(30) {
		t.Errorf("expected 30, got %v", out)
	}
}

func TestInstall_ApplyFromLua(t *testing.T) {
	L, reg := newState(t)

	// Mix Go and Lua filters on the same hook.
	reg.AddFilter("greet", 10, func(v any) any {
		return "Hello, " + v.(string)
	})

	err := L.DoString(`
		hooks.add_filter("greet", 20, function(v) return v .. "!" end)
		result = hooks.apply_filters("greet", "world")
	`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	result := L.GetGlobal("result")
	if result.String() != "Hello, world!" {
		t.Errorf("expected %q, got %q", "Hello, world!", result.String())
	}
}

func TestInstall_RemoveFromLua(t *testing.T) {
	L, reg := newState(t)

	err := L.DoString(`
		local id = hooks.add_filter("num", 10, function(v) return v + 1 end)
		first = hooks.remove_filter("num", id)
		second = hooks.remove_filter("num", id)
	`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	if L.GetGlobal("first") != lua.LTrue {
		t.Error("expected first removal to return true")
	}
	if L.GetGlobal("second") != lua.LFalse {
		t.Error("expected second removal to return false")
	}
	if reg.Has("num") {
		t.Error("expected hook to be empty after removal")
	}
}

func TestInstall_RemoveAllFromLua(t *testing.T) {
	L, reg := newState(t)

	err := L.DoString(`
		hooks.add_filter("num", 10, function(v) return v + 1 end)
		hooks.add_filter("num", 20, function(v) return v * 2 end)
		hooks.remove_all_filters("num")
		result = hooks.apply_filters("num", 7)
	`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	if n, ok := L.GetGlobal("result").(lua.LNumber); !ok || float64(n) != 7 {
		t.Errorf("expected identity 7, got %v", L.GetGlobal("result"))
	}
	if reg.Has("num") {
		t.Error("expected hook to be absent")
	}
}

func TestInstall_TypeMismatchRaisesLuaError(t *testing.T) {
	L, reg := newState(t)

	hookline.Add(reg, "strict", 10, func(s string) string { return s })

	err := L.DoString(`hooks.apply_filters("strict", 42)`)
	if err == nil {
		t.Fatal("expected Lua error for type mismatch")
	}
	if !strings.Contains(err.Error(), "type mismatch") {
		t.Errorf("expected type mismatch message, got %v", err)
	}
}

func TestInstall_TableRoundTrip(t *testing.T) {
	L, reg := newState(t)

	err := L.DoString(`
		hooks.add_filter("doc", 10, function(v)
			v.count = v.count + 1
			v.tags[#v.tags + 1] = "lua"
			return v
		end)
	`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	in := map[string]any{
		"count": int64(1),
		"tags":  []any{"go"},
	}
	out, err := reg.ApplyFilters("doc", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", out)
	}
	if m["count"] != int64(2) {
		t.Errorf("expected count 2, got %v", m["count"])
	}
	tags, ok := m["tags"].([]any)
	if !ok || len(tags) != 2 || tags[1] != "lua" {
		t.Errorf("expected tags [go lua], got %v", m["tags"])
	}
}

func TestToGo_SparseTable(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	// Numeric keys without index 1 are not an array; every value must
	// survive as a map entry.
	tbl := L.NewTable()
	tbl.RawSetInt(2, lua.LString("a"))
	tbl.RawSetInt(3, lua.LString("b"))

	m, ok := toGo(tbl).(map[string]any)
	if !ok {
		t.Fatalf("expected map for sparse table, got %T", toGo(tbl))
	}
	if m["2"] != "a" || m["3"] != "b" {
		t.Errorf("expected both sparse values kept, got %v", m)
	}

	// A single off-origin key also stays a map, not a slice with a hole.
	single := L.NewTable()
	single.RawSetInt(2, lua.LString("a"))
	if _, ok := toGo(single).(map[string]any); !ok {
		t.Errorf("expected map for {[2]=a}, got %T", toGo(single))
	}

	// Contiguous keys 1..n still convert to a slice.
	dense := L.NewTable()
	dense.RawSetInt(1, lua.LString("x"))
	dense.RawSetInt(2, lua.LString("y"))
	arr, ok := toGo(dense).([]any)
	if !ok || len(arr) != 2 || arr[0] != "x" || arr[1] != "y" {
		t.Errorf("expected [x y] slice, got %v", toGo(dense))
	}
}

func TestInstall_UserDataPassThrough(t *testing.T) {
	L, reg := newState(t)

	type opaque struct{ n int }
	val := &opaque{n: 7}

	// Lua passes unknown Go values through untouched.
	err := L.DoString(`hooks.add_filter("opaque", 10, function(v) return v end)`)
	if err != nil {
		t.Fatalf("unexpected Lua error: %v", err)
	}

	out, err := reg.ApplyFilters("opaque", val)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != val {
		t.Errorf("expected the same pointer back, got %v", out)
	}
}
