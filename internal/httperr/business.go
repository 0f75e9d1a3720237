package httperr

import "errors"

// BusinessError carrega só um código de regra de negócio ("slot_taken",
// "owner_absent", "invalid_state"...). Quem traduz código em status HTTP
// e mensagem é o handler.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness testa se err é um BusinessError com o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
