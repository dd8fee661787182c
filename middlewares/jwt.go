package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/utils"
)

func GetTokenFromAuthorizationHeader(authHeader string) (string, error) {
	if len(authHeader) == 0 {
		return "", errors.New(utils.MISSING_REQUEST_DATA)
	}
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) < 2 {
		return "", errors.New(utils.MISSING_REQUEST_DATA)
	}
	return bearerToken[1], nil
}

// RequireAccessToken guards a handler behind a bearer token. A token is only
// accepted when its signature and expiry check out and its username claim
// still resolves to an account. Client-caused failures answer 401; a missing
// signing key or a store failure answers 500.
func RequireAccessToken(signingKey []byte) func(http.HandlerFunc) http.HandlerFunc {
	return func(f http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if len(signingKey) == 0 {
				log.Println("token verification unavailable: signing key not configured")
				http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
				return
			}
			authorization := r.Header.Get("Authorization")
			tokenString, err := GetTokenFromAuthorizationHeader(authorization)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			claims, err := utils.VerifyToken(tokenString, signingKey)
			if err != nil {
				log.Println(err)
				if utils.IsTokenExpired(err) {
					http.Error(w, utils.JWT_TOKEN_EXPIRED_ERROR, http.StatusUnauthorized)
				} else {
					http.Error(w, utils.JWT_TOKEN_PARSING_ERROR, http.StatusUnauthorized)
				}
				return
			}
			username, _ := claims[utils.CLAIM_USERNAME].(string)
			if _, err := dbhelper.GetUserByUsername(username); err != nil {
				if errors.Is(err, dbhelper.ErrUserNotFound) {
					http.Error(w, utils.JWT_TOKEN_PARSING_ERROR, http.StatusUnauthorized)
				} else {
					log.Println(err)
					http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
				}
				return
			}
			f(w, r)
		}
	}
}
