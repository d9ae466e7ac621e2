package bootstrap

import "context"

// AuditLog adalah satu kejadian operasional penting (startup,
// shutdown, kegagalan fatal) yang wajib tercatat di luar log aplikasi.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
