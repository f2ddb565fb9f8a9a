package planner

import "errors"

// ErrInvalidInput 唯一的硬失败：输入结构不完整时在任何计算开始前返回。
// 文案面向用户，不暴露内部字段名。
var ErrInvalidInput = errors.New("insufficient information to build a learning plan")
