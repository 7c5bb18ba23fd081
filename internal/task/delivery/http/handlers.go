package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	"mentalbank/pkg/response"
)

// CreateTask godoc
// @Summary     Create a new task
// @Description Creates a task; a zero hourly rate inherits the category default.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Category not found"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks with optional filters.
// @Tags        Task
// @Produce     json
// @Param       category_id query string false "Filter by category"
// @Param       completed   query bool   false "Filter by completion"
// @Param       priority    query string false "Filter by priority (low/medium/high)"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listTasksResp
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// DetailTask godoc
// @Summary     Get task detail
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) DetailTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.DetailTask(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are unchanged.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// CompleteTask godoc
// @Summary     Mark a task completed
// @Description Sets the completion flag and timestamp. Idempotent.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.CompleteTask(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteTask(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateCategory godoc
// @Summary     Create a new category
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       body body createCategoryReq true "Category data"
// @Success     200 {object} categoryDetailResp
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/categories [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateCategoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateCategory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoryDetailResp(output))
}

// ListCategories godoc
// @Summary     List categories
// @Tags        Category
// @Produce     json
// @Success     200 {object} listCategoriesResp
// @Router      /api/v1/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.ListCategories(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListCategoriesResp(output))
}

// UpdateCategory godoc
// @Summary     Update a category
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Category ID"
// @Param       body body updateCategoryReq true "Fields to update"
// @Success     200 {object} categoryDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateCategoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateCategory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoryDetailResp(output))
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Description Removes the category; its tasks become uncategorized.
// @Tags        Category
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteCategory(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
