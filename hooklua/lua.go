package hooklua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hookline"
)

// TableName is the global Lua table the API is installed under.
const TableName = "hooks"

// binding ties a Lua state to a registry.
type binding struct {
	L   *lua.LState
	reg *hookline.Registry
}

// Install registers the filter API into L as a global "hooks" table:
//
//	hooks.add_filter(name, priority, fn) -> id
//	hooks.apply_filters(name, value) -> value
//	hooks.remove_filter(name, id) -> bool
//	hooks.remove_all_filters(name)
//
// All four functions operate on reg and interoperate with filters registered
// from Go on the same registry.
func Install(L *lua.LState, reg *hookline.Registry) {
	b := &binding{L: L, reg: reg}

	tbl := L.NewTable()
	L.SetField(tbl, "add_filter", L.NewFunction(b.addFilter))
	L.SetField(tbl, "apply_filters", L.NewFunction(b.applyFilters))
	L.SetField(tbl, "remove_filter", L.NewFunction(b.removeFilter))
	L.SetField(tbl, "remove_all_filters", L.NewFunction(b.removeAllFilters))
	L.SetGlobal(TableName, tbl)
}

// addFilter implements hooks.add_filter(name, priority, fn).
func (b *binding) addFilter(L *lua.LState) int {
	name := L.CheckString(1)
	priority := L.CheckInt(2)
	fn := L.CheckFunction(3)

	// The callback runs on the owning state. Errors raised by the Lua
	// function propagate to the apply caller as a panic, matching the
	// registry's contract that callback failures are not suppressed.
	id := b.reg.AddFilter(name, priority, func(v any) any {
		b.L.Push(fn)
		b.L.Push(toLua(b.L, v))
		b.L.Call(1, 1)
		ret := b.L.Get(-1)
		b.L.Pop(1)
		return toGo(ret)
	})

	L.Push(lua.LNumber(id))
	return 1
}

// applyFilters implements hooks.apply_filters(name, value).
func (b *binding) applyFilters(L *lua.LState) int {
	name := L.CheckString(1)
	value := toGo(L.CheckAny(2))

	out, err := b.reg.ApplyFilters(name, value)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	L.Push(toLua(L, out))
	return 1
}

// removeFilter implements hooks.remove_filter(name, id).
func (b *binding) removeFilter(L *lua.LState) int {
	name := L.CheckString(1)
	id := hookline.FilterID(L.CheckInt64(2))

	L.Push(lua.LBool(b.reg.RemoveFilter(name, id)))
	return 1
}

// removeAllFilters implements hooks.remove_all_filters(name).
func (b *binding) removeAllFilters(L *lua.LState) int {
	name := L.CheckString(1)
	b.reg.RemoveAllFilters(name)
	return 0
}
