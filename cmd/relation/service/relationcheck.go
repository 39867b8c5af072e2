package service

import (
	"context"
	"fmt"

	"Murmur.com/pkg/errno"
)

// RelationCheckService 关系点查服务, 供访问控制类调用方使用
type RelationCheckService struct {
	ctx   context.Context
	store EdgeStore
}

func NewRelationCheckService(ctx context.Context, store EdgeStore) *RelationCheckService {
	return &RelationCheckService{ctx: ctx, store: store}
}

// IsFollowerOf candidate是否关注了target, 走点查而不是扫描
func (s *RelationCheckService) IsFollowerOf(ctx context.Context, candidateID, targetID int64) (bool, error) {
	if candidateID == 0 || targetID == 0 {
		return false, errno.ParamErr
	}
	edge, err := s.store.Find(ctx, candidateID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow relation: %w", errno.StorageErr)
	}
	return edge != nil, nil
}
