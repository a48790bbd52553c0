package helper

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C       *gin.Context
	Status  string
	Message string
	Data    interface{}
	Code    int // the http code
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{
		Validate: validator.New(),
	}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a service-layer error to its HTTP status. Unknown
// error types are internal failures.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch u.getTypeData(err) {
	case "models.ErrorValidation":
		return http.StatusBadRequest
	case "models.ErrorConflict":
		return http.StatusBadRequest
	case "models.ErrorIntegrity":
		return http.StatusBadRequest
	case "models.ErrorUnauthorized":
		return http.StatusUnauthorized
	case "models.ErrorForbidden":
		return http.StatusForbidden
	case "models.ErrorNotFound":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int) ResponseHelper {
	return ResponseHelper{c, status, message, data, code}
}

// SendError ...
// Send a service-layer error with its mapped status code.
func (u *HTTPHelper) SendError(c *gin.Context, err error) error {
	res := u.SetResponse(c, textError, err.Error(), u.EmptyJsonMap(), u.GetStatusCode(err))

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, http.StatusBadRequest)

	return u.SendResponse(res)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"status":  textError,
		"message": errorResponse,
		"data":    u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, http.StatusUnauthorized)

	return u.SendResponse(res)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, http.StatusNotFound)

	return u.SendResponse(res)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusOK)

	return u.SendResponse(res)
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusCreated)

	return u.SendResponse(res)
}

// SendNoContent ...
func (u *HTTPHelper) SendNoContent(c *gin.Context) error {
	c.Status(http.StatusNoContent)
	return nil
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"status":  res.Status,
		"message": res.Message,
		"data":    res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// Underscore converts a StructField name like "CategoryIDs" to
// "category_ids" for validation error keys.
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
