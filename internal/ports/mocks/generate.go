//go:generate mockgen -source=../remote_validator.go    -destination=./mock_remote_validator.go    -package=mocks
//go:generate mockgen -source=../cart_submitter.go      -destination=./mock_cart_submitter.go      -package=mocks
//go:generate mockgen -source=../cart_context.go        -destination=./mock_cart_context.go        -package=mocks
//go:generate mockgen -source=../completion_notifier.go -destination=./mock_completion_notifier.go -package=mocks
//go:generate mockgen -source=../run_repository.go      -destination=./mock_run_repository.go      -package=mocks
//go:generate mockgen -source=../upload_service.go      -destination=./mock_upload_service.go      -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks

package mocks
