package postgres

// Connection precisa satisfazer Conn: o despachante de mensagens recebe a
// conexão pela interface. Quebra aqui se alguma assinatura divergir.
var _ Conn = (*Connection)(nil)
