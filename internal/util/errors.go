package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrProfileNotFound   = errors.New("learner profile not found")
	ErrObjectiveNotFound = errors.New("learning objective not found")
	ErrProgressNotFound  = errors.New("progress record not found")
	ErrPlanNotFound      = errors.New("learning plan not found")
	ErrResourceNotFound  = errors.New("resource not found")
)
