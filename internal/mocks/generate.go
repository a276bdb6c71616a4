package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchProvider --dir ../domain/feed --output domain/feed --outpkg feedmock --filename match_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CricketProvider --dir ../domain/feed --output domain/feed --outpkg feedmock --filename cricket_provider_mock.go
