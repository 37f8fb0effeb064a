//go:generate mockgen -source=../placement_repository.go -destination=./mock_placement_repository.go -package=mocks
//go:generate mockgen -source=../placement_writer.go     -destination=./mock_placement_writer.go     -package=mocks
//go:generate mockgen -source=../placement_cache.go      -destination=./mock_placement_cache.go      -package=mocks
//go:generate mockgen -source=../placement_service.go    -destination=./mock_placement_service.go    -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks

package mocks
