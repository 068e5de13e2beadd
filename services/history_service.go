package services

import (
	"log"

	"catalog-api/models"
	"catalog-api/repositories"
)

const historyQueueSize = 256

type HistoryService interface {
	// Record enqueues a history write without blocking the caller.
	// Records are dropped (and logged) when the queue is full.
	Record(record models.UserHistory)
	GetHistory(userID uint, params models.HistoryListParams) (*models.HistoryListResponse, error)
	Close()
}

type historyService struct {
	historyRepo repositories.HistoryRepository
	queue       chan models.UserHistory
	done        chan struct{}
}

func NewHistoryService(historyRepo repositories.HistoryRepository) HistoryService {
	s := &historyService{
		historyRepo: historyRepo,
		queue:       make(chan models.UserHistory, historyQueueSize),
		done:        make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *historyService) Record(record models.UserHistory) {
	select {
	case s.queue <- record:
	default:
		log.Printf("history queue full, dropping %s record for user %d", record.Action, record.UserID)
	}
}

func (s *historyService) run() {
	for record := range s.queue {
		if err := s.historyRepo.Create(&record); err != nil {
			log.Printf("failed to record %s history for user %d: %v", record.Action, record.UserID, err)
		}
	}
	close(s.done)
}

// Close drains the queue and stops the recorder goroutine.
func (s *historyService) Close() {
	close(s.queue)
	<-s.done
}

func (s *historyService) GetHistory(userID uint, params models.HistoryListParams) (*models.HistoryListResponse, error) {
	records, total, err := s.historyRepo.GetListByUser(userID, params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list history"}
	}

	if records == nil {
		records = []models.UserHistory{}
	}

	return &models.HistoryListResponse{
		History:    records,
		Pagination: models.NewPagination(params.Page, params.Limit, total),
	}, nil
}
