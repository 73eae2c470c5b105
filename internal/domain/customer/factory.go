package customer

// DefaultFactory builds customers with freshly generated identifiers.
type DefaultFactory struct{}

func NewDefaultFactory() DefaultFactory {
	return DefaultFactory{}
}

func (DefaultFactory) NewCustomer(name Name, email Email) *Customer {
	return New(NextID(), name, email)
}
