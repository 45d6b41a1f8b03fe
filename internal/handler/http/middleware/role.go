package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
)

// RequireChef requires the chef role.
func RequireChef(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleChef)
}

// RequireByggeleder requires the byggeleder or chef role.
func RequireByggeleder(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleByggeleder, employee.RoleChef)
}

func requireRoles(next http.Handler, allowed ...employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role := employee.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.Forbidden(w, "Insufficient permissions")
	})
}
