package domain

import "errors"

// Kind clasifica los errores del dominio para que las capas externas
// (HTTP, callers) decidan sin inspeccionar mensajes.
type Kind string

const (
	// KindValidation entrada mal formada o fuera de rango. Nunca toca storage.
	KindValidation Kind = "validation"
	// KindBusinessRule entrada bien formada pero una regla de negocio nombrada falla.
	KindBusinessRule Kind = "business_rule"
	// KindNotFound el cliente o factura referenciada no existe.
	KindNotFound Kind = "not_found"
	// KindStorage backend de persistencia no disponible o inconsistente.
	// El detalle del backend no se expone al caller; queda solo para logs.
	KindStorage Kind = "storage"
)

// Error es el error de dominio con clase y código estable.
// Validaciones y reglas de negocio son deterministas: no se reintentan.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error // causa interna (solo logging, no se serializa al caller)
}

func (e *Error) Error() string {
	return e.Message
}

// Cause devuelve la causa interna (nil para errores deterministas).
func (e *Error) Cause() error {
	return e.cause
}

// Is permite comparar contra los sentinelas por código y clase.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func validation(code, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg}
}

func rule(code, msg string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: msg}
}

func notFound(code, msg string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: msg}
}

// StorageUnavailable envuelve una falla del backend como error opaco de storage.
// El mensaje es genérico a propósito: el caller recibe un código estable y
// la causa real solo va a los logs.
func StorageUnavailable(cause error) *Error {
	return &Error{
		Kind:    KindStorage,
		Code:    "STORAGE_UNAVAILABLE",
		Message: "almacenamiento no disponible",
		cause:   cause,
	}
}

// KindOf devuelve la clase del error, o "" si no es un error de dominio.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf devuelve el código estable del error, o "" si no es un error de dominio.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Errores de validación (forma/rango de la entrada).
var (
	ErrInvalidAmount           = validation("INVALID_AMOUNT", "el monto debe ser positivo")
	ErrUnsupportedMethod       = validation("UNSUPPORTED_METHOD", "método de pago no soportado")
	ErrInvalidCardNumber       = validation("INVALID_CARD_NUMBER", "número de tarjeta inválido (16 dígitos)")
	ErrUnsupportedCardNetwork  = validation("UNSUPPORTED_CARD_NETWORK", "red de tarjeta no soportada")
	ErrMissingBankDetails      = validation("MISSING_BANK_DETAILS", "cuenta y ruteo bancario son requeridos")
	ErrMissingWalletIdentifier = validation("MISSING_WALLET_IDENTIFIER", "identificador de wallet requerido")
	ErrMissingAuthCode         = validation("MISSING_AUTH_CODE", "código de autorización requerido")
	ErrInvalidAuthCode         = validation("INVALID_AUTH_CODE", "código de autorización inválido (6 caracteres)")
	ErrInvalidInput            = validation("INVALID_INPUT", "entrada inválida")
)

// Errores de reglas de negocio (crédito y cuenta).
var (
	ErrMinorIneligible            = rule("MINOR_INELIGIBLE", "menores de edad no reciben aumentos de crédito")
	ErrExceedsSingleIncreaseLimit = rule("EXCEEDS_SINGLE_INCREASE_LIMIT", "el aumento excede el máximo por solicitud")
	ErrExceedsTotalLimit          = rule("EXCEEDS_TOTAL_LIMIT", "el límite total excedería el techo absoluto")
	ErrTooManyLatePayments        = rule("TOO_MANY_LATE_PAYMENTS", "demasiados pagos tardíos en el historial")
	ErrOutstandingBalance         = rule("OUTSTANDING_BALANCE", "la cuenta tiene saldo pendiente")
	ErrAccountClosed              = rule("ACCOUNT_CLOSED", "la cuenta ya está cerrada")
	ErrCustomerExists             = rule("CUSTOMER_EXISTS", "ya existe un cliente con ese email")
)

// Errores de recursos inexistentes.
var (
	ErrCustomerNotFound = notFound("CUSTOMER_NOT_FOUND", "cliente no encontrado")
	ErrInvoiceNotFound  = notFound("INVOICE_NOT_FOUND", "factura no encontrada")
	ErrPaymentNotFound  = notFound("PAYMENT_NOT_FOUND", "pago no encontrado")
)
