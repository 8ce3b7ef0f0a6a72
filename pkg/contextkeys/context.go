package contextkeys

// Кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ для *gorm.DB в gin.Context
	DBContextKey = contextKey("db")

	// AdminClaimsKey - ключ для claims администратора после AdminAuthMiddleware
	AdminClaimsKey = contextKey("admin_claims")
)
