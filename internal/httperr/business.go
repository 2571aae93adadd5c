package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio; a camada
// HTTP decide o status. O código nunca revela se um registro existe em
// outro tenant (not_found cobre os dois casos).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código quando o erro é de negócio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsConflict agrupa os dois motivos de conflito de agenda, que chegam
// distintos ao cliente mas recebem o mesmo status HTTP.
func IsConflict(err error) bool {
	return IsBusiness(err, "time_conflict") || IsBusiness(err, "time_block_conflict")
}
