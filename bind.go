package bingo

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamType tags a bound value with the type it should be sent as.
// The numbering follows the PDO::PARAM_* constants.
type ParamType uint8

const (
	ParamNull ParamType = 0
	ParamInt  ParamType = 1
	ParamStr  ParamType = 2
	ParamLOB  ParamType = 3
	ParamBool ParamType = 5
)

// Bind is a single parameter substitution into a prepared statement.
// Param is either a named placeholder (":title") or, for "?" statements, anything at all:
// positional binds are applied in order.
type Bind struct {
	Param string
	Value any
	Type  ParamType
}

func (b Bind) name() string {
	return strings.TrimPrefix(b.Param, ":")
}

// coerce converts Value to Type. Values which cannot be converted are passed through
// untouched and left for the driver to judge.
func (b Bind) coerce() any {
	switch b.Type {
	case ParamNull:
		return nil
	case ParamInt:
		switch v := b.Value.(type) {
		case int:
			return int64(v)
		case int32:
			return int64(v)
		case int64:
			return v
		case uint:
			return int64(v)
		case uint32:
			return int64(v)
		case bool:
			if v {
				return int64(1)
			}
			return int64(0)
		case string:
			if i, err := strconv.ParseInt(v, 10, 64); err == nil {
				return i
			}
		}
	case ParamStr:
		switch v := b.Value.(type) {
		case nil:
			return nil
		case string:
			return v
		case []byte:
			return string(v)
		default:
			return fmt.Sprint(v)
		}
	case ParamLOB:
		switch v := b.Value.(type) {
		case string:
			return []byte(v)
		case []byte:
			return v
		}
	case ParamBool:
		switch v := b.Value.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		case int:
			return v != 0
		case int64:
			return v != 0
		}
	}

	return b.Value
}
