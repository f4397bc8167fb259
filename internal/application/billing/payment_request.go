package billing

import (
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
)

// Claves esperadas en el mapa de atributos de un pago.
const (
	AttrCardNumber    = "card_number"
	AttrAuthCode      = "authorization_code"
	AttrAccountNumber = "account_number"
	AttrRoutingNumber = "routing_number"
	AttrWalletAddress = "wallet_address"
)

const (
	cardNumberLength = 16
	authCodeLength   = 6
)

// paymentRequest es la variante tipada de una solicitud de pago.
// Los atributos crudos se parsean a una variante por método antes de rutear;
// a partir de ahí el despacho es un switch plano sobre el tipo.
type paymentRequest interface {
	method() string
}

type cardRequest struct {
	number   string // nunca se persiste ni se loguea completo
	authCode string // solo requerido para el tier large; se valida allí
}

type bankTransferRequest struct {
	account string // nunca se persiste completo
	routing string
}

type walletRequest struct {
	address string
}

func (cardRequest) method() string         { return entity.PaymentMethodCard }
func (bankTransferRequest) method() string { return entity.PaymentMethodBankTransfer }
func (walletRequest) method() string       { return entity.PaymentMethodWallet }

// parsePaymentRequest valida forma y presencia de atributos y construye la
// variante del método. Falla rápido: ningún efecto secundario ocurre antes.
func parsePaymentRequest(method string, attrs map[string]string) (paymentRequest, error) {
	switch method {
	case entity.PaymentMethodCard:
		return parseCardRequest(attrs)
	case entity.PaymentMethodBankTransfer:
		return parseBankTransferRequest(attrs)
	case entity.PaymentMethodWallet:
		return parseWalletRequest(attrs)
	default:
		return nil, domain.ErrUnsupportedMethod
	}
}

func parseCardRequest(attrs map[string]string) (paymentRequest, error) {
	number := attrs[AttrCardNumber]
	if len(number) != cardNumberLength || !isNumeric(number) {
		return nil, domain.ErrInvalidCardNumber
	}
	// Identificación de red por dígito inicial: allow-list gruesa, no Luhn/BIN.
	if number[0] != '4' && number[0] != '5' {
		return nil, domain.ErrUnsupportedCardNetwork
	}
	return cardRequest{number: number, authCode: attrs[AttrAuthCode]}, nil
}

func parseBankTransferRequest(attrs map[string]string) (paymentRequest, error) {
	account := attrs[AttrAccountNumber]
	routing := attrs[AttrRoutingNumber]
	if account == "" || routing == "" {
		return nil, domain.ErrMissingBankDetails
	}
	return bankTransferRequest{account: account, routing: routing}, nil
}

func parseWalletRequest(attrs map[string]string) (paymentRequest, error) {
	address := attrs[AttrWalletAddress]
	if address == "" {
		return nil, domain.ErrMissingWalletIdentifier
	}
	return walletRequest{address: address}, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// last4 devuelve los últimos 4 caracteres del identificador (fragmento
// redactado, no reversible). Asume longitud ya validada ≥ 4.
func last4(s string) string {
	if len(s) < 4 {
		return s
	}
	return s[len(s)-4:]
}
