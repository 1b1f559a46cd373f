package btlua

import (
	"math"

	"github.com/Shopify/go-lua"

	"github.com/fennwick/bt"
)

// The blackboard reaches Lua as a userdata with get/set/has/delete/len
// methods, so scripts share exactly the state that Go leaves see. Lua
// numbers written through set land in Go as int when integral, float64
// otherwise.

var blackboardMethods = []lua.RegistryFunction{
	{Name: "get", Function: blackboardGet},
	{Name: "set", Function: blackboardSet},
	{Name: "has", Function: blackboardHas},
	{Name: "delete", Function: blackboardDelete},
	{Name: "len", Function: blackboardLen},
}

func registerBlackboardType(state *lua.State) {
	lua.NewMetaTable(state, blackboardTypeName)
	state.NewTable()
	lua.SetFunctions(state, blackboardMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func checkBlackboard(state *lua.State) *bt.Blackboard {
	ud := lua.CheckUserData(state, 1, blackboardTypeName)
	if bb, ok := ud.(*bt.Blackboard); ok && bb != nil {
		return bb
	}
	lua.ArgumentError(state, 1, "blackboard expected")
	return nil
}

func blackboardGet(state *lua.State) int {
	bb := checkBlackboard(state)
	key := lua.CheckString(state, 2)
	pushGoValue(state, bb.Get(key))
	return 1
}

func blackboardSet(state *lua.State) int {
	bb := checkBlackboard(state)
	key := lua.CheckString(state, 2)
	bb.Set(key, luaToGo(state, 3))
	return 0
}

func blackboardHas(state *lua.State) int {
	bb := checkBlackboard(state)
	key := lua.CheckString(state, 2)
	state.PushBoolean(bb.Has(key))
	return 1
}

func blackboardDelete(state *lua.State) int {
	bb := checkBlackboard(state)
	key := lua.CheckString(state, 2)
	bb.Delete(key)
	return 0
}

func blackboardLen(state *lua.State) int {
	bb := checkBlackboard(state)
	state.PushInteger(bb.Len())
	return 1
}

func pushGoValue(state *lua.State, value any) {
	switch v := value.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(v)
	case string:
		state.PushString(v)
	case int:
		state.PushNumber(float64(v))
	case int64:
		state.PushNumber(float64(v))
	case uint:
		state.PushNumber(float64(v))
	case float32:
		state.PushNumber(float64(v))
	case float64:
		state.PushNumber(v)
	default:
		// Opaque Go value: round-trips through Lua untouched.
		state.PushUserData(v)
	}
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

func normalizeNumber(value float64) any {
	if value == math.Trunc(value) && value >= math.MinInt64 && value <= math.MaxInt64 {
		return int(value)
	}
	return value
}
