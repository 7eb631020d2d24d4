package service

import "errors"

// Domain errors. All of them are local and recoverable: a rejected operation
// leaves every prior state intact, and the HTTP layer maps these to 4xx
// responses. Messages are user-facing (pt-BR), matching the PDV screens.
var (
	// ErrInvalidQuantity: a non-positive quantity reached a cart mutation.
	ErrInvalidQuantity = errors.New("a quantidade deve ser maior que zero")
	// ErrEmptyCart: finalize attempted with no line items.
	ErrEmptyCart = errors.New("adicione produtos ao carrinho antes de finalizar a venda")
	// ErrMissingCustomer: finalize without a customer name while the
	// REQUIRE_CUSTOMER_NAME policy is on.
	ErrMissingCustomer = errors.New("informe o nome do cliente para finalizar a venda")
	// ErrInsufficientPayment: tendered cash below the amount due.
	ErrInsufficientPayment = errors.New("o valor recebido é menor que o valor total da venda")
	// ErrNoOpenRegister: an operation that needs an open till found none.
	ErrNoOpenRegister = errors.New("não há caixa aberto")
	// ErrRegisterAlreadyOpen: opening while another register is still open.
	ErrRegisterAlreadyOpen = errors.New("já existe um caixa aberto")
	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("registro não encontrado")
)
