package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"github.com/wfunc/rogue-chain/internal/repository"
	"github.com/wfunc/rogue-chain/internal/utils"
)

// authService 认证服务实现
type authService struct {
	db          *gorm.DB
	accountRepo repository.AccountRepository
	jwtManager  *utils.JWTManager
	accessTTL   time.Duration
	log         *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	jwtManager *utils.JWTManager,
	accessTTL time.Duration,
	log *zap.Logger,
) AuthService {
	return &authService{
		db:          db,
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
		accessTTL:   accessTTL,
		log:         log,
	}
}

// Register 注册账号并分配玩家地址
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if existing, _ := s.accountRepo.FindByUsername(ctx, req.Username); existing != nil {
		return nil, apperrors.Newf(apperrors.ErrAlreadyExists, "用户名已存在: %s", req.Username)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "密码加密失败")
	}

	account := &models.PlayerAccount{
		Address:  utils.GeneratePlayerAddress(),
		Username: req.Username,
		Password: hashedPassword,
		Status:   "active",
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.log.Error("账号创建失败", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}

	s.log.Info("账号注册成功",
		zap.String("username", req.Username),
		zap.String("address", account.Address))

	return s.issueTokens(account)
}

// Login 登录
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	account, err := s.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		// 不泄露账号是否存在
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	if !account.IsActive() {
		return nil, apperrors.New(apperrors.ErrAuthorization, "账号已被封禁")
	}

	ok, err := utils.VerifyPassword(req.Password, account.Password)
	if err != nil || !ok {
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.Address, time.Now()); err != nil {
		s.log.Warn("更新登录时间失败", zap.String("address", account.Address), zap.Error(err))
	}

	return s.issueTokens(account)
}

// RefreshToken 刷新访问令牌
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}
	if claims.TokenType != "refresh" {
		return nil, apperrors.New(apperrors.ErrTokenInvalid, "不是刷新令牌")
	}

	account, err := s.accountRepo.FindByAddress(ctx, claims.Address)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrAuthentication)
	}
	if !account.IsActive() {
		return nil, apperrors.New(apperrors.ErrAuthorization, "账号已被封禁")
	}

	return s.issueTokens(account)
}

// ValidateToken 验证访问令牌
func (s *authService) ValidateToken(ctx context.Context, token string) (*TokenClaims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, apperrors.New(apperrors.ErrTokenExpired)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}
	if claims.TokenType != "access" {
		return nil, apperrors.New(apperrors.ErrTokenInvalid, "不是访问令牌")
	}

	return &TokenClaims{
		Address:  claims.Address,
		Username: claims.Username,
	}, nil
}

// issueTokens 签发访问令牌和刷新令牌
func (s *authService) issueTokens(account *models.PlayerAccount) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(account.Address, account.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "令牌生成失败")
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(account.Address)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "令牌生成失败")
	}

	return &AuthResponse{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		TokenType:    "Bearer",
	}, nil
}
