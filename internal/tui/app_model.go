// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudix/coindesk/internal/handler"
	"github.com/cloudix/coindesk/models"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenProfile
	screenQuests
	screenServices
	screenRedeemForm
	screenRedeemDone
	screenSettings
	screenAdmin
	screenUpdate
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingRedeem
	pendingResetData
	pendingResetUser
	pendingResetAll
)

type appModel struct {
	ctx     context.Context
	handler *handler.Handler

	currentScreen screen

	login      loginModel
	dashboard  dashboardModel
	profile    profileModel
	quests     questsModel
	services   servicesModel
	redeemForm redeemFormModel
	redeemDone redeemDoneModel
	settings   settingsModel
	admin      adminModel
	update     updateModel

	validatedPlanID string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	pending      pendingAction
	pendingEmail string

	err error
}

func newAppModel(ctx context.Context, h *handler.Handler, status models.LoginStatus) appModel {
	m := appModel{
		ctx:           ctx,
		handler:       h,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		dashboard:     newDashboardModel(),
		quests:        newQuestsModel(),
		services:      newServicesModel(),
		settings:      newSettingsModel(),
		admin:         newAdminModel(),
		update:        newUpdateModel(),
	}
	if status.IsLoggedIn {
		m.currentScreen = screenDashboard
		m.dashboard.isAdmin = status.IsAdmin
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenDashboard {
		return m.cmdLoadUser()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m.dispatchPending()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pending = pendingNone
				m.pendingEmail = ""
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.dashboard = newDashboardModel()
		m.dashboard.isAdmin = msg.res.Account.Admin
		m.dashboard.servers = msg.res.Servers
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser()
	case loggedOutMsg:
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.login = newLoginModel()
		m.dashboard = newDashboardModel()
		m.currentScreen = screenLogin
		return m, nil
	case userLoadedMsg:
		m.dashboard.loading = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.dashboard.user = msg.res.User
		m.services.balance = msg.res.User.Coins
		m.services.redeemed = msg.res.User.RedeemedService
		return m, nil
	case profileSavedMsg:
		m.profile.submitting = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser()
	case questsLoadedMsg:
		m.quests.loading = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.quests.quests = msg.res.Quests
		if m.quests.idx >= len(m.quests.quests) {
			m.quests.idx = 0
		}
		return m, nil
	case claimDoneMsg:
		m.quests.claiming = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.quests.status = fmt.Sprintf("+%d монети! Нов баланс: %d", msg.res.CoinsEarned, msg.res.NewBalance)
		return m, tea.Batch(m.cmdLoadQuests(), m.cmdLoadUser(), cmdClearStatus())
	case servicesLoadedMsg:
		m.services.loading = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.services.plans = msg.res.Services
		return m, nil
	case validateDoneMsg:
		m.services.validating = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.validatedPlanID = msg.res.Plan.ID
		m.redeemForm = newRedeemFormModel(msg.res)
		m.currentScreen = screenRedeemForm
		return m, nil
	case confirmDoneMsg:
		m.redeemForm.submitting = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.redeemDone = redeemDoneModel{
			service:  msg.res.Service,
			serverID: msg.res.PanelServerID,
			balance:  msg.res.NewBalance,
			panelURL: m.handler.PanelURL(),
		}
		m.currentScreen = screenRedeemDone
		return m, m.cmdLoadUser()
	case settingsLoadedMsg:
		m.settings.loading = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.settings.setTheme(msg.res.Settings.Theme)
		return m, nil
	case settingsSavedMsg:
		m.settings.saving = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.settings.status = "Запазено: " + msg.theme
		return m, cmdClearStatus()
	case coinsAddedMsg:
		m.admin.submitting = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.admin.status = msg.res.Message
		return m, tea.Batch(m.cmdLoadUser(), cmdClearStatus())
	case adminActionMsg:
		m.admin.submitting = false
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.admin.status = msg.res.Message
		return m, tea.Batch(m.cmdLoadUser(), cmdClearStatus())
	case updateCheckedMsg:
		m.update.checking = false
		m.update.checked = true
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		m.update.result = msg.res
		return m, nil
	case openedMsg:
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
		}
		return m, nil
	case installStartedMsg:
		if !msg.res.Success {
			m.showErrorf(msg.res.Error)
			return m, nil
		}
		// The installer takes over from here.
		return m, tea.Quit
	case copiedMsg:
		m.dashboard.status = "Копирано!"
		m.redeemDone.status = "Копирано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.dashboard.status = ""
		m.quests.status = ""
		m.settings.status = ""
		m.redeemDone.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.update.checking {
			var cmd tea.Cmd
			m.update.spinner, cmd = m.update.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenQuests:
		return m.updateQuests(msg)
	case screenServices:
		return m.updateServices(msg)
	case screenRedeemForm:
		return m.updateRedeemForm(msg)
	case screenRedeemDone:
		return m.updateRedeemDone(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	case screenUpdate:
		return m.updateUpdate(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenProfile:
		body = m.profile.View()
	case screenQuests:
		body = m.quests.View()
	case screenServices:
		body = m.services.View()
	case screenRedeemForm:
		body = m.redeemForm.View()
	case screenRedeemDone:
		body = m.redeemDone.View()
	case screenSettings:
		body = m.settings.View()
	case screenAdmin:
		body = m.admin.View()
	case screenUpdate:
		body = m.update.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(message string, action pendingAction) {
	m.showConfirm = true
	m.confirm.message = message
	m.pending = action
}

func (m appModel) dispatchPending() (tea.Model, tea.Cmd) {
	action := m.pending
	m.pending = pendingNone
	switch action {
	case pendingRedeem:
		m.redeemForm.submitting = true
		return m, m.cmdConfirmRedeem(m.validatedPlanID, m.redeemForm.serverName(), m.redeemForm.environment())
	case pendingResetData:
		return m, m.cmdResetData()
	case pendingResetUser:
		m.admin.submitting = true
		email := m.pendingEmail
		m.pendingEmail = ""
		return m, m.cmdAdminResetUser(email)
	case pendingResetAll:
		m.admin.submitting = true
		email := m.pendingEmail
		m.pendingEmail = ""
		return m, m.cmdAdminResetAll(email)
	}
	return m, nil
}

// navigate handles the hub keys shared by every screen without text inputs.
func (m appModel) navigate(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, keys.goDashboard):
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser(), true
	case key.Matches(keyMsg, keys.goQuests):
		m.quests = newQuestsModel()
		m.currentScreen = screenQuests
		return m, m.cmdLoadQuests(), true
	case key.Matches(keyMsg, keys.goServices):
		m.services = newServicesModel()
		m.currentScreen = screenServices
		return m, tea.Batch(m.cmdLoadServices(), m.cmdLoadUser()), true
	case key.Matches(keyMsg, keys.goSettings):
		m.settings = newSettingsModel()
		m.currentScreen = screenSettings
		return m, m.cmdLoadSettings(), true
	case key.Matches(keyMsg, keys.goAdmin):
		if !m.dashboard.isAdmin {
			return m, nil, true
		}
		m.admin = newAdminModel()
		m.currentScreen = screenAdmin
		return m, nil, true
	case key.Matches(keyMsg, keys.goUpdate):
		m.update = newUpdateModel()
		m.currentScreen = screenUpdate
		return m, nil, true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit, true
	}
	return m, nil, false
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "enter":
			if m.login.submitting {
				return m, nil
			}
			apiKey := strings.TrimSpace(m.login.input.Value())
			if apiKey == "" {
				m.showErrorf("Невалиден API ключ")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(apiKey)
		}
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.servers)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.edit):
		m.profile = newProfileModel(m.dashboard.user.Username, m.dashboard.user.Email)
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.copy):
		srv, ok := m.dashboard.currentServer()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(srv.ID)
	case key.Matches(keyMsg, keys.open):
		return m, m.cmdOpenExternal(m.handler.PanelURL())
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, m.cmdLoadUser()
	case key.Matches(keyMsg, keys.reset):
		m.askConfirm("Изтрий локалните данни (монети, мисии)?", pendingResetData)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "esc":
			m.currentScreen = screenDashboard
			return m, nil
		case "tab":
			m.profile = focusNextProfile(m.profile)
			return m, nil
		case "shift+tab":
			m.profile = focusPrevProfile(m.profile)
			return m, nil
		case "enter":
			username := strings.TrimSpace(m.profile.inputs[0].Value())
			email := strings.TrimSpace(m.profile.inputs[1].Value())
			if username == "" {
				m.showErrorf("Невалидни данни")
				return m, nil
			}
			m.profile.submitting = true
			return m, m.cmdSaveProfile(username, email)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateQuests(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser()
	}
	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.quests.idx > 0 {
			m.quests.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.quests.idx < len(m.quests.quests)-1 {
			m.quests.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.quests.claiming {
			return m, nil
		}
		quest, ok := m.quests.current()
		if !ok {
			return m, nil
		}
		m.quests.claiming = true
		return m, m.cmdClaimQuest(quest.ID)
	}
	return m, nil
}

func (m appModel) updateServices(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser()
	}
	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.services.idx > 0 {
			m.services.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.services.idx < len(m.services.plans)-1 {
			m.services.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.services.validating {
			return m, nil
		}
		plan, ok := m.services.current()
		if !ok {
			return m, nil
		}
		m.services.validating = true
		return m, m.cmdValidateRedeem(plan.ID)
	}
	return m, nil
}

func (m appModel) updateRedeemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "esc":
			m.currentScreen = screenServices
			return m, nil
		case "tab":
			m.redeemForm = focusNextRedeemForm(m.redeemForm)
			return m, nil
		case "shift+tab":
			m.redeemForm = focusPrevRedeemForm(m.redeemForm)
			return m, nil
		case "enter":
			if m.redeemForm.submitting {
				return m, nil
			}
			m.askConfirm(fmt.Sprintf("Потвърди: %s за %d монети?", m.redeemForm.plan.Name, m.redeemForm.plan.Cost), pendingRedeem)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.redeemForm.inputs[m.redeemForm.focus], cmd = m.redeemForm.inputs[m.redeemForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRedeemDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, m.cmdLoadUser()
	}
	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		if m.redeemDone.serverID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.redeemDone.serverID)
	case key.Matches(keyMsg, keys.open):
		return m, m.cmdOpenExternal(m.redeemDone.panelURL)
	}
	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, nil
	}
	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < len(themeChoices)-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.settings.saving {
			return m, nil
		}
		m.settings.saving = true
		return m, m.cmdSaveSettings(m.settings.selected())
	}
	return m, nil
}

func (m appModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "esc":
			m.currentScreen = screenDashboard
			return m, m.cmdLoadUser()
		case "tab":
			m.admin = focusNextAdmin(m.admin)
			return m, nil
		case "shift+tab":
			m.admin = focusPrevAdmin(m.admin)
			return m, nil
		case "enter":
			if m.admin.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.admin.inputs[0].Value())
			amount, err := strconv.Atoi(strings.TrimSpace(m.admin.inputs[1].Value()))
			if email == "" || err != nil || amount <= 0 {
				m.showErrorf("Невалидни данни")
				return m, nil
			}
			m.admin.submitting = true
			return m, m.cmdAdminAddCoins(email, amount)
		case "ctrl+r":
			email := strings.TrimSpace(m.admin.inputs[0].Value())
			if email == "" {
				m.showErrorf("Невалидни данни")
				return m, nil
			}
			m.pendingEmail = email
			m.askConfirm("Reset redemption за "+email+"?", pendingResetUser)
			return m, nil
		case "ctrl+d":
			email := strings.TrimSpace(m.admin.inputs[0].Value())
			if email == "" {
				m.showErrorf("Невалидни данни")
				return m, nil
			}
			m.pendingEmail = email
			m.askConfirm("Reset ВСИЧКИ данни за "+email+"?", pendingResetAll)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.admin.inputs[m.admin.focus], cmd = m.admin.inputs[m.admin.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, nil
	}
	if next, cmd, handled := m.navigate(keyMsg); handled {
		return next, cmd
	}

	switch keyMsg.String() {
	case "enter":
		if m.update.checking {
			return m, nil
		}
		m.update.checking = true
		return m, tea.Batch(m.update.spinner.Tick, m.cmdCheckForUpdates())
	case "d":
		if !m.update.result.HasUpdate {
			return m, nil
		}
		return m, m.cmdDownloadUpdate()
	case "i":
		if !m.update.result.HasUpdate {
			return m, nil
		}
		return m, m.cmdInstallUpdate()
	}
	return m, nil
}

func (m appModel) cmdLogin(apiKey string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return loginDoneMsg{res: h.Login(ctx, apiKey)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return loggedOutMsg{res: h.Logout(ctx)}
	}
}

func (m appModel) cmdLoadUser() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return userLoadedMsg{res: h.UserData(ctx)}
	}
}

func (m appModel) cmdSaveProfile(username, email string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return profileSavedMsg{res: h.SaveUserData(ctx, username, email)}
	}
}

func (m appModel) cmdResetData() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return userLoadedMsg{res: wrapReset(ctx, h, h.ResetData(ctx))}
	}
}

func (m appModel) cmdLoadQuests() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return questsLoadedMsg{res: h.Quests(ctx)}
	}
}

func (m appModel) cmdClaimQuest(questID string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return claimDoneMsg{res: h.ClaimQuest(ctx, questID)}
	}
}

func (m appModel) cmdLoadServices() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return servicesLoadedMsg{res: h.Services(ctx)}
	}
}

func (m appModel) cmdValidateRedeem(planID string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return validateDoneMsg{res: h.ValidateRedeem(ctx, planID)}
	}
}

func (m appModel) cmdConfirmRedeem(planID, serverName string, env map[string]string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return confirmDoneMsg{res: h.ConfirmRedeem(ctx, planID, serverName, env)}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return settingsLoadedMsg{res: h.Settings(ctx)}
	}
}

func (m appModel) cmdSaveSettings(theme string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return settingsSavedMsg{res: h.SaveSettings(ctx, models.Settings{Theme: theme}), theme: theme}
	}
}

func (m appModel) cmdAdminAddCoins(email string, amount int) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return coinsAddedMsg{res: h.AdminAddCoins(ctx, email, amount)}
	}
}

func (m appModel) cmdAdminResetUser(email string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return adminActionMsg{res: h.AdminResetUser(ctx, email)}
	}
}

func (m appModel) cmdAdminResetAll(email string) tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return adminActionMsg{res: h.AdminResetAll(ctx, email)}
	}
}

func (m appModel) cmdCheckForUpdates() tea.Cmd {
	ctx := m.ctx
	h := m.handler
	return func() tea.Msg {
		return updateCheckedMsg{res: h.CheckForUpdates(ctx)}
	}
}

func (m appModel) cmdDownloadUpdate() tea.Cmd {
	h := m.handler
	return func() tea.Msg {
		return openedMsg{res: h.DownloadUpdate()}
	}
}

func (m appModel) cmdInstallUpdate() tea.Cmd {
	h := m.handler
	return func() tea.Msg {
		return installStartedMsg{res: h.InstallUpdate()}
	}
}

func (m appModel) cmdOpenExternal(url string) tea.Cmd {
	h := m.handler
	return func() tea.Msg {
		return openedMsg{res: h.OpenExternal(url)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return openedMsg{res: models.Failure("copy to clipboard: " + err.Error())}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// wrapReset reloads the profile after a successful local reset so the
// dashboard reflects the cleared state immediately.
func wrapReset(ctx context.Context, h *handler.Handler, res models.Result) models.UserDataResult {
	if !res.Success {
		return models.UserDataResult{Result: res}
	}
	return h.UserData(ctx)
}

func focusNextProfile(m profileModel) profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevProfile(m profileModel) profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRedeemForm(m redeemFormModel) redeemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRedeemForm(m redeemFormModel) redeemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextAdmin(m adminModel) adminModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevAdmin(m adminModel) adminModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
