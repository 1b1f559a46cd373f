// Package btlua runs Lua functions as behavior-tree leaf behaviors.
//
// A VM hosts one Lua state. Leaf behaviors are loaded as chunks that return
// a function; that function is called once per tick with the blackboard and
// must return one of the status strings "running", "success" or "failure"
// (also available as bt.running, bt.success and bt.failure inside Lua):
//
//	leaf, err := vm.Leaf(`
//	    return function(bb)
//	        bb:set("steps", (bb:get("steps") or 0) + 1)
//	        if bb:get("steps") >= 3 then return bt.success end
//	        return bt.running
//	    end
//	`)
//
// A VM and every leaf created from it must be driven from a single
// goroutine, matching the engine's serial tick model. In particular, Lua
// leaves must not be wrapped in an AsyncLeaf sharing the VM with other
// leaves.
package btlua

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Shopify/go-lua"

	"github.com/fennwick/bt"
)

// Status strings returned by Lua leaf functions. They match the values
// exposed to Lua as the bt.* globals.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

const blackboardTypeName = "btlua.blackboard"

// debugLua controls verbose leaf error output.
// Set BT_DEBUG_LUA=1 to enable.
var debugLua = os.Getenv("BT_DEBUG_LUA") == "1"

// VM hosts a Lua state whose functions can be bound as leaf behaviors.
type VM struct {
	state    *lua.State
	nextLeaf int
}

// New returns a VM with the standard Lua libraries opened, the blackboard
// type registered, and the bt status globals set.
func New() *VM {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerBlackboardType(state)
	registerStatusGlobals(state)
	return &VM{state: state}
}

// Leaf loads source as a chunk that returns a function and wraps that
// function as a leaf. On every tick the function receives the blackboard
// and its returned status string is mapped to the leaf's status. A Lua
// runtime error, or a return value that is not a known status string,
// reports Failure.
func (v *VM) Leaf(source string) (*bt.Leaf, error) {
	if err := lua.LoadString(v.state, source); err != nil {
		v.state.SetTop(0)
		return nil, fmt.Errorf("btlua: load chunk: %w", err)
	}
	if err := v.state.ProtectedCall(0, 1, 0); err != nil {
		v.state.SetTop(0)
		return nil, fmt.Errorf("btlua: run chunk: %w", err)
	}
	if !v.state.IsFunction(-1) {
		v.state.Pop(1)
		return nil, errors.New("btlua: chunk must return a function")
	}
	v.nextLeaf++
	key := fmt.Sprintf("btlua.leaf.%d", v.nextLeaf)
	v.state.SetField(lua.RegistryIndex, key)
	return bt.NewLeaf(func(bb *bt.Blackboard) bt.Status {
		return v.call(key, bb)
	}), nil
}

// DoString runs source in the VM, for seeding helper functions or shared
// Lua state before any leaf is built.
func (v *VM) DoString(source string) error {
	if err := lua.DoString(v.state, source); err != nil {
		v.state.SetTop(0)
		return fmt.Errorf("btlua: %w", err)
	}
	return nil
}

func (v *VM) call(key string, bb *bt.Blackboard) bt.Status {
	v.state.Field(lua.RegistryIndex, key)
	v.state.PushUserData(bb)
	lua.SetMetaTableNamed(v.state, blackboardTypeName)
	if err := v.state.ProtectedCall(1, 1, 0); err != nil {
		// The error object stays on the stack after a failed call.
		v.state.SetTop(0)
		if debugLua {
			slog.Debug("[BT] lua leaf error", "leaf", key, "error", err)
		}
		return bt.Failure
	}
	status := statusAt(v.state, -1)
	v.state.Pop(1)
	return status
}

func statusAt(state *lua.State, index int) bt.Status {
	if state.TypeOf(index) != lua.TypeString {
		return bt.Failure
	}
	s, _ := state.ToString(index)
	switch s {
	case StatusRunning:
		return bt.Running
	case StatusSuccess:
		return bt.Success
	case StatusFailure:
		return bt.Failure
	default:
		return bt.Failure
	}
}

func registerStatusGlobals(state *lua.State) {
	state.NewTable()
	state.PushString(StatusRunning)
	state.SetField(-2, "running")
	state.PushString(StatusSuccess)
	state.SetField(-2, "success")
	state.PushString(StatusFailure)
	state.SetField(-2, "failure")
	state.SetGlobal("bt")
}
