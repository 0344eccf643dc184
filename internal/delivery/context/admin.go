package context

import "github.com/labstack/echo/v4"

// SetAdmin records the identity of a verified admin token.
func SetAdmin(c echo.Context, subject string, roles []string) {
	c.Set(string(KeyAdminSubject), subject)
	c.Set(string(KeyAdminRoles), roles)
}

func GetAdminSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeyAdminSubject)).(string)

	return subject, ok && subject != ""
}

func GetAdminRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyAdminRoles)).([]string)

	return roles, ok
}
