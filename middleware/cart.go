package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartCookie     = "cart_id"
	cartOwnerKey   = "cart_owner"
	cartCookieTTL  = 60 * 60 * 24 * 30
	anonCartPrefix = "anon:"
	userCartPrefix = "user:"
)

func UserCartOwner(userID string) string {
	return userCartPrefix + userID
}

func AnonCartOwner(cartID string) string {
	return anonCartPrefix + cartID
}

// CartOwner picks the cart a request works on: the signed-in user's cart,
// otherwise the anonymous cart named by the cart_id cookie, issuing one
// when missing. Must run after Session.
func CartOwner(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := CurrentUser(c); user != nil {
			c.Set(cartOwnerKey, UserCartOwner(user.ID))
			c.Next()
			return
		}

		cartID, err := c.Cookie(CartCookie)
		if err != nil || uuid.Validate(cartID) != nil {
			cartID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookie, cartID, cartCookieTTL, "/", "", secure, true)
		}
		c.Set(cartOwnerKey, AnonCartOwner(cartID))
		c.Next()
	}
}

func CartOwnerFrom(c *gin.Context) string {
	return c.GetString(cartOwnerKey)
}
