package catalog

// ErrMsgBuilderClosed is the panic message for a builder reused after Build
const ErrMsgBuilderClosed = "catalog: builder used after Build"
