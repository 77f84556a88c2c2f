package usecase

import (
	"log/slog"

	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// Dependencies are the adapters shared by every use case. Publisher and
// Metrics may be nil.
type Dependencies struct {
	Catalog      port.Catalog
	Publisher    port.EventPublisher
	Completer    port.ChatCompleter
	Metrics      *Instruments
	Logger       *slog.Logger
	HistoryLimit int
	SystemPrompt string
}

// Set groups the use cases served by the transports.
type Set struct {
	CalculateMortgage    *CalculateMortgageUseCase
	GenerateSchedule     *GenerateScheduleUseCase
	CheckAffordability   *CheckAffordabilityUseCase
	RankNeighborhoods    *RankNeighborhoodsUseCase
	CompareNeighborhoods *CompareNeighborhoodsUseCase
	RankFinancingOffers  *RankFinancingOffersUseCase
	ListFinancingOffers  *ListFinancingOffersUseCase
	AnalyzeEnvironment   *AnalyzeEnvironmentUseCase
	CompareRisk          *CompareRiskUseCase
	SearchProperties     *SearchPropertiesUseCase
	GetProperty          *GetPropertyUseCase
	ListConsultants      *ListConsultantsUseCase
	ListInspectors       *ListInspectorsUseCase
	Chat                 *ChatUseCase
	GenerateInsight      *GenerateInsightUseCase
}

// NewSet builds every use case over shared engines. Chat and insights are
// left nil when no completer is given.
func NewSet(deps Dependencies) *Set {
	financial := service.NewFinancialEngine()
	scoring := service.NewScoringEngine()
	logger := loggerOrDefault(deps.Logger)

	s := &Set{
		CalculateMortgage:    NewCalculateMortgageUseCase(deps.Catalog, financial, deps.Publisher, deps.Metrics, logger),
		GenerateSchedule:     NewGenerateScheduleUseCase(deps.Catalog, financial, deps.Publisher, deps.Metrics, logger),
		CheckAffordability:   NewCheckAffordabilityUseCase(financial, deps.Metrics),
		RankNeighborhoods:    NewRankNeighborhoodsUseCase(deps.Catalog, scoring, deps.Publisher, deps.Metrics, logger),
		CompareNeighborhoods: NewCompareNeighborhoodsUseCase(deps.Catalog, scoring, deps.Metrics, logger),
		RankFinancingOffers:  NewRankFinancingOffersUseCase(deps.Catalog, scoring, financial, deps.Publisher, deps.Metrics, logger),
		ListFinancingOffers:  NewListFinancingOffersUseCase(deps.Catalog),
		AnalyzeEnvironment:   NewAnalyzeEnvironmentUseCase(deps.Catalog, deps.Metrics),
		CompareRisk:          NewCompareRiskUseCase(deps.Catalog, deps.Metrics),
		SearchProperties:     NewSearchPropertiesUseCase(deps.Catalog),
		GetProperty:          NewGetPropertyUseCase(deps.Catalog, scoring),
		ListConsultants:      NewListConsultantsUseCase(deps.Catalog),
		ListInspectors:       NewListInspectorsUseCase(deps.Catalog),
	}
	if deps.Completer != nil {
		s.Chat = NewChatUseCase(deps.Completer, deps.Publisher, deps.Metrics, logger, deps.HistoryLimit, deps.SystemPrompt)
		s.GenerateInsight = NewGenerateInsightUseCase(deps.Catalog, scoring, s.Chat)
	}
	return s
}
