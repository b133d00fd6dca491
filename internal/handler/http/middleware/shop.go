package middleware

import (
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/user"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireShop rejects requests from accounts that have not joined or created
// a shop yet. Shop-scoped handlers read the shop id from the token, never
// from the request body.
func RequireShop(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrShopIDRequired)
			return
		}

		shopID, ok := claims["shop_id"].(string)
		if !ok || shopID == "" {
			response.HandleError(w, user.ErrShopIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ShopID extracts the authenticated shop id from the request token
func ShopID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	shopID, _ := claims["shop_id"].(string)
	return shopID
}

// UserID extracts the authenticated user id from the request token
func UserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

// UserEmail extracts the authenticated email from the request token
func UserEmail(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
