// Package webui holds the server-rendered HTML surfaces: the login page,
// the status/home page and the error pages. The landing pages themselves
// come straight from the content store and are served as-is.
package webui

import "html/template"

type HomeData struct {
	LoggedIn bool
	UserName string
}

type NotFoundData struct {
	Slug string
}

var HomePage = template.Must(template.New("home").Parse(homePageHTML))
var LandingPageNotFound = template.Must(template.New("lp404").Parse(landingPageNotFoundHTML))

const LoginPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Login - Landing Pages</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
    }
    .login-container {
      background: white;
      padding: 50px 40px;
      border-radius: 20px;
      box-shadow: 0 20px 60px rgba(0,0,0,0.3);
      max-width: 400px;
      width: 100%;
    }
    h1 { color: #667eea; font-size: 2em; margin-bottom: 10px; text-align: center; }
    .subtitle { color: #999; text-align: center; margin-bottom: 30px; font-size: 0.9em; }
    .form-group { margin-bottom: 20px; }
    label { display: block; color: #555; margin-bottom: 8px; font-weight: 500; }
    input {
      width: 100%;
      padding: 12px 15px;
      border: 2px solid #e0e0e0;
      border-radius: 8px;
      font-size: 1em;
    }
    input:focus { outline: none; border-color: #667eea; }
    button {
      width: 100%;
      padding: 14px;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: white;
      border: none;
      border-radius: 8px;
      font-size: 1em;
      font-weight: 600;
      cursor: pointer;
    }
    .error {
      background: #fee;
      color: #c33;
      padding: 12px;
      border-radius: 8px;
      margin-bottom: 20px;
      text-align: center;
      font-size: 0.9em;
      display: none;
    }
    .error.show { display: block; }
  </style>
</head>
<body>
  <div class="login-container">
    <h1>🔐 Login</h1>
    <p class="subtitle">Landing Pages Server</p>

    <div class="error" id="error-message"></div>

    <form id="login-form" method="POST" action="/login">
      <div class="form-group">
        <label for="email">Email</label>
        <input type="email" id="email" name="email" required autofocus>
      </div>

      <div class="form-group">
        <label for="password">Senha</label>
        <input type="password" id="password" name="password" required>
      </div>

      <button type="submit">Entrar</button>
    </form>
  </div>

  <script>
    const form = document.getElementById('login-form');
    const errorDiv = document.getElementById('error-message');

    form.addEventListener('submit', async (e) => {
      e.preventDefault();

      const formData = new FormData(form);
      const data = {
        email: formData.get('email'),
        password: formData.get('password')
      };

      try {
        const response = await fetch('/login', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify(data)
        });

        const result = await response.json();

        if (result.success) {
          window.location.href = '/';
        } else {
          errorDiv.textContent = result.message || 'Erro ao fazer login';
          errorDiv.classList.add('show');
        }
      } catch (error) {
        errorDiv.textContent = 'Erro ao conectar com o servidor';
        errorDiv.classList.add('show');
      }
    });
  </script>
</body>
</html>
`

const homePageHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Landing Pages Server</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
    }
    .container {
      background: white;
      padding: 60px 40px;
      border-radius: 20px;
      box-shadow: 0 20px 60px rgba(0,0,0,0.3);
      max-width: 600px;
      text-align: center;
      position: relative;
    }
    .user-info {
      position: absolute;
      top: 20px;
      right: 20px;
      font-size: 0.9em;
      color: #666;
    }
    .logout-btn {
      background: #f44336;
      color: white;
      padding: 8px 16px;
      border-radius: 6px;
      text-decoration: none;
      font-size: 0.85em;
    }
    h1 { color: #667eea; font-size: 2.5em; margin-bottom: 20px; }
    p { color: #555; font-size: 1.1em; margin-bottom: 20px; line-height: 1.6; }
    .code {
      background: #f5f5f5;
      padding: 15px;
      border-radius: 8px;
      font-family: 'Courier New', monospace;
      color: #667eea;
      margin: 20px 0;
    }
    .info { color: #999; font-size: 0.9em; margin-top: 30px; }
    .status {
      display: inline-block;
      padding: 6px 12px;
      border-radius: 20px;
      font-size: 0.85em;
      font-weight: 600;
      margin-bottom: 20px;
    }
    .status.logged-in { background: #e8f5e9; color: #2e7d32; }
    .status.logged-out { background: #ffebee; color: #c62828; }
  </style>
</head>
<body>
  <div class="container">
    {{- if .LoggedIn }}
    <div class="user-info">
      <span>👤 {{ .UserName }}</span>
      <a href="/logout" class="logout-btn">Sair</a>
    </div>
    <div class="status logged-in">✓ Autenticado</div>
    {{- else }}
    <div class="status logged-out">✗ Não autenticado</div>
    {{- end }}

    <h1>🚀 Landing Pages Server</h1>
    <p>Servidor rodando com sucesso!</p>

    {{- if .LoggedIn }}
    <p>Para acessar uma landing page, use:</p>
    <div class="code">/lp/seu-slug-aqui</div>
    <p class="info">Exemplo: <a href="/lp/exemplo">/lp/exemplo</a></p>
    {{- else }}
    <p>Faça login para acessar as landing pages</p>
    <p><a href="/login">Ir para login</a></p>
    {{- end }}
  </div>
</body>
</html>
`

const landingPageNotFoundHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Página não encontrada</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
      color: white;
      text-align: center;
    }
    h1 { font-size: 3em; margin-bottom: 20px; }
    p { font-size: 1.2em; opacity: 0.9; }
    .code {
      background: rgba(255,255,255,0.1);
      padding: 10px 20px;
      border-radius: 8px;
      display: inline-block;
      margin-top: 20px;
      font-family: monospace;
    }
  </style>
</head>
<body>
  <div>
    <h1>404</h1>
    <p>Landing page não encontrada</p>
    <div class="code">/lp/{{ .Slug }}</div>
  </div>
</body>
</html>
`

const ServerErrorPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Erro no servidor</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: #f44336;
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
      color: white;
      text-align: center;
    }
    h1 { font-size: 3em; margin-bottom: 20px; }
    p { font-size: 1.2em; opacity: 0.9; }
  </style>
</head>
<body>
  <div>
    <h1>⚠️ Erro no servidor</h1>
    <p>Ocorreu um erro ao carregar a landing page</p>
  </div>
</body>
</html>
`

const RouteNotFoundPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>404 - Rota não encontrada</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
      color: white;
      text-align: center;
    }
    h1 { font-size: 3em; margin-bottom: 20px; }
    p { font-size: 1.2em; opacity: 0.9; }
  </style>
</head>
<body>
  <div>
    <h1>404</h1>
    <p>Rota não encontrada</p>
    <p style="margin-top: 20px; font-size: 0.9em;">Use /lp/seu-slug para acessar landing pages</p>
  </div>
</body>
</html>
`
