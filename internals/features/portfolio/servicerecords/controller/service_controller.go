// file: internals/features/portfolio/servicerecords/controller/service_controller.go
package controller

import (
	"errors"
	"strings"

	serviceDTO "teachereval_backend/internals/features/portfolio/servicerecords/dto"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceController struct {
	DB *gorm.DB
}

// POST /api/a/service
func (h *ServiceController) CreateService(c *fiber.Ctx) error {
	var req serviceDTO.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date cannot precede start date")
	}

	var created serviceModel.ServiceModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create service contribution")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Service contribution created", serviceDTO.FromServiceModel(created))
}

// GET /api/a/service?teacher_id=&kind=&ongoing=true
func (h *ServiceController) ListService(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&serviceModel.ServiceModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("service_teacher_id = ?", id)
	}
	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" {
		if !serviceModel.ServiceKind(kind).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid service kind")
		}
		q = q.Where("service_kind = ?", kind)
	}
	if strings.EqualFold(c.Query("ongoing"), "true") {
		q = q.Where("service_end_date IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count service contributions")
	}

	var rows []serviceModel.ServiceModel
	if err := q.Order("service_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list service contributions")
	}

	return helper.JsonList(c, "ok", serviceDTO.FromServiceModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/service/:id
func (h *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid service id")
	}

	var req serviceDTO.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m serviceModel.ServiceModel
	if err := h.DB.Where("service_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service contribution not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch service contribution")
	}

	req.Apply(&m)
	if m.ServiceEndDate != nil && m.ServiceEndDate.Before(m.ServiceStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date cannot precede start date")
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update service contribution")
	}
	return helper.JsonUpdated(c, "Service contribution updated", serviceDTO.FromServiceModel(m))
}

// DELETE /api/a/service/:id?force=true
func (h *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid service id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("service_id = ?", id).Delete(&serviceModel.ServiceModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete service contribution")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Service contribution not found")
	}
	return helper.JsonDeleted(c, "Service contribution deleted", fiber.Map{"service_id": id})
}
