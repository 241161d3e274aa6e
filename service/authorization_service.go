// service/authorization_service.go
package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aegisd/aegis/dao"
	logger "github.com/aegisd/aegis/logging"
	"github.com/aegisd/aegis/metrics"
	"github.com/aegisd/aegis/model"
)

// AuthorizationService is the decision engine. A decision fetches the
// subject's attribute snapshot and the resource's bound policy set, then
// fans out one evaluation per policy: a policy is satisfied iff all of its
// conditions hold (AND), and the decision is allow iff any bound policy is
// satisfied (OR). An empty policy set denies. Any store or policy fetch
// failure aborts the decision rather than defaulting to allow.
type AuthorizationService struct {
	userDAO       *dao.UserDAO
	resourceDAO   *dao.ResourceDAO
	policyService IPolicyService
}

func NewAuthorizationService(userDAO *dao.UserDAO, resourceDAO *dao.ResourceDAO, policyService IPolicyService) *AuthorizationService {
	return &AuthorizationService{
		userDAO:       userDAO,
		resourceDAO:   resourceDAO,
		policyService: policyService,
	}
}

// IsAuthorized decides whether the user may access the resource.
func (s *AuthorizationService) IsAuthorized(ctx context.Context, userID, resourceID string) (bool, error) {
	attributes, err := s.userDAO.GetAttributes(ctx, userID)
	if err != nil {
		return false, err
	}

	policyIDs, err := s.resourceDAO.GetPolicyIDs(ctx, resourceID)
	if err != nil {
		return false, err
	}

	allowed, err := s.anyPolicySatisfied(ctx, policyIDs, attributes)
	if err != nil {
		return false, err
	}

	metrics.AuthzDecisionsTotal.WithLabelValues(strconv.FormatBool(allowed)).Inc()
	logger.Debug("Authorization decision",
		zap.String("userID", userID),
		zap.String("resourceID", resourceID),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// anyPolicySatisfied evaluates every bound policy concurrently and joins
// before combining. Evaluations are read-only over the fetched snapshot, so
// no synchronization is needed beyond the join.
func (s *AuthorizationService) anyPolicySatisfied(ctx context.Context, policyIDs []string, attributes map[string]string) (bool, error) {
	if len(policyIDs) == 0 {
		return false, nil
	}

	results := make([]bool, len(policyIDs))
	g, ctx := errgroup.WithContext(ctx)
	for i, policyID := range policyIDs {
		i, policyID := i, policyID
		g.Go(func() error {
			policy, err := s.policyService.GetPolicy(ctx, policyID)
			if err != nil {
				// A dangling reference left by an out-of-band policy
				// removal fails the whole decision (fail closed).
				return err
			}
			results[i] = policySatisfied(policy.Conditions, attributes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	for _, satisfied := range results {
		if satisfied {
			return true, nil
		}
	}
	return false, nil
}

func policySatisfied(conditions []model.Condition, attributes map[string]string) bool {
	for _, condition := range conditions {
		if !conditionHolds(condition, attributes) {
			return false
		}
	}
	return true
}

// conditionHolds compares one condition against the subject's stored
// attribute snapshot. Unset attributes never satisfy a condition. The
// stored textual value is coerced to the comparison type implied by the
// condition's value; anything unparseable evaluates false.
func conditionHolds(condition model.Condition, attributes map[string]string) bool {
	stored, ok := attributes[condition.AttributeName]
	if !ok {
		return false
	}

	switch want := condition.Value.(type) {
	case bool:
		return condition.Operator == model.OpEqual && model.DecodeBool(stored) == want
	case string:
		switch condition.Operator {
		case model.OpEqual:
			return stored == want
		case model.OpStartsWith:
			return strings.HasPrefix(stored, want)
		default:
			return false
		}
	default:
		want64, ok := model.AsInt64(condition.Value)
		if !ok {
			return false
		}
		got, err := strconv.ParseInt(stored, 10, 64)
		if err != nil {
			return false
		}
		switch condition.Operator {
		case model.OpEqual:
			return got == want64
		case model.OpLess:
			return got < want64
		case model.OpGreater:
			return got > want64
		default:
			return false
		}
	}
}
