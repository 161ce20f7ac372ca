// Package hooklua exposes a hookline.Registry to embedded Lua scripts.
//
// This package bridges a filter registry into a gopher-lua state, allowing
// host-embedded scripts to register, apply, and remove filters alongside Go
// code. The host constructs and owns the *lua.LState; hooklua only installs
// an API table into it.
//
// # Usage
//
//	L := lua.NewState()
//	defer L.Close()
//
//	reg := hookline.NewRegistry()
//	hooklua.Install(L, reg)
//
//	err := L.DoString(`
//	    hooks.add_filter("the_title", 10, function(v)
//	        return v .. "!"
//	    end)
//	`)
//
//	out, err := hookline.Apply(reg, "the_title", "Hello")
//	// out == "Hello!"
//
// # Value Conversion
//
// Values cross the boundary through a conversion bridge: booleans, numbers,
// strings, and tables (as maps or slices) convert structurally; other Go
// values pass through Lua as opaque userdata. Lua has a single number type,
// so numbers surface in Go as int64 when integral and float64 otherwise.
//
// # Threading
//
// A *lua.LState is not safe for concurrent use. Filters registered from Lua
// run on the state they were registered in: apply passes that reach a
// Lua-registered filter must run on the goroutine that owns the state.
package hooklua
