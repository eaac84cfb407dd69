package utils

import (
	"context"

	"bitbucket.org/mmdatafocus/invoice_backend/appctx"
)

func SetUserIdInContext(ctx context.Context, userId uint) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyUserId, userId)
}

func GetUserIdFromContext(ctx context.Context) (uint, bool) {
	return appctx.GetUint(ctx, appctx.ContextKeyUserId)
}

func SetUserEmailInContext(ctx context.Context, email string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyUserEmail, email)
}

func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyUserEmail)
}

func SetUserTypeInContext(ctx context.Context, userType string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyUserType, userType)
}

func GetUserTypeFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyUserType)
}

func SetCorrelationIdInContext(ctx context.Context, id string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyCorrelationId, id)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyCorrelationId)
}
