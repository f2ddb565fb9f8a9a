package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"
	"edupath_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService 学习资源的上传与检索。
// 视频资源入库时用 ffmpeg 探测时长，供投放层按路径预估时间选材。
type ContentService struct {
	ResourceRepo   *repository.ResourceRepository
	StorageService *StorageService
}

func NewContentService(resourceRepo *repository.ResourceRepository, storageService *StorageService) *ContentService {
	return &ContentService{
		ResourceRepo:   resourceRepo,
		StorageService: storageService,
	}
}

type UploadResourceInput struct {
	Title      string
	Subject    string
	Kind       string
	Difficulty int
	UploaderID uint
}

var validKinds = map[string]bool{
	model.ResourceKindText:        true,
	model.ResourceKindVideo:       true,
	model.ResourceKindInteractive: true,
	model.ResourceKindSimulation:  true,
}

// UploadResource 校验并保存上传的资源文件，返回入库的资源记录
func (s *ContentService) UploadResource(ctx context.Context, file *multipart.FileHeader, input UploadResourceInput) (*model.ResourceItem, error) {
	if !validKinds[input.Kind] {
		return nil, fmt.Errorf("unknown resource kind: %s", input.Kind)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeImage, util.MimePDF, "text/", util.MimeOctetStream})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("resources/%s/%s%s", input.Subject, model.GenerateUUID(), ext)

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}

	item := &model.ResourceItem{
		Title:      input.Title,
		Subject:    input.Subject,
		Kind:       input.Kind,
		URL:        url,
		Format:     strings.TrimPrefix(ext, "."),
		Difficulty: input.Difficulty,
		UploaderID: input.UploaderID,
	}

	if input.Kind == model.ResourceKindVideo && util.IsVideo(mimeType) {
		if minutes, err := s.probeVideoDuration(file); err != nil {
			logger.Log.Warn("video probe failed", zap.String("file", file.Filename), zap.Error(err))
		} else {
			item.DurationMinutes = minutes
		}
	}

	if err := s.ResourceRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// probeVideoDuration 将上传内容落到临时文件后用 ffmpeg 探测时长
func (s *ContentService) probeVideoDuration(file *multipart.FileHeader) (int, error) {
	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "edupath-probe-*"+filepath.Ext(file.Filename))
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return 0, err
	}

	info, err := util.GetVideoInfo(tmp.Name())
	if err != nil {
		return 0, err
	}

	minutes := int(info.Duration / 60)
	if info.Duration > 0 && minutes == 0 {
		minutes = 1
	}
	return minutes, nil
}

func (s *ContentService) GetByID(id string) (*model.ResourceItem, error) {
	item, err := s.ResourceRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResourceNotFound
	}
	return item, err
}

func (s *ContentService) ListBySubjectAndKind(subject, kind string) ([]model.ResourceItem, error) {
	return s.ResourceRepo.FindBySubjectAndKind(subject, kind)
}

func (s *ContentService) List(page, limit int) ([]model.ResourceItem, int64, error) {
	return s.ResourceRepo.List(page, limit)
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	item, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrResourceNotFound
		}
		return err
	}

	if err := s.ResourceRepo.Delete(id); err != nil {
		return err
	}

	// 存储删除失败只记日志，数据库记录已移除
	if err := s.StorageService.Delete(ctx, strings.TrimPrefix(item.URL, "/uploads/")); err != nil {
		logger.Log.Warn("resource file delete failed", zap.String("url", item.URL), zap.Error(err))
	}
	return nil
}
