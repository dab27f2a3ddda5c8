package repository

import "context"

// トランザクション内で使う約束。
// 注文はヘッダと明細を必ず同じTxで書く（片方だけ残る事故を防ぐ）。
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
