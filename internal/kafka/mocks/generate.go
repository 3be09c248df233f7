package mocks

//go:generate mockgen -source=../consumer.go -destination=mock_consumer.go -package=mocks
//go:generate mockgen -source=../notifier.go -destination=mock_notifier.go -package=mocks
