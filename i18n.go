package main

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages
const (
	LangEnglish = "en"
	LangSpanish = "es"
	LangGerman  = "de"
)

var (
	// Global printer for internationalization
	printer *message.Printer

	// Synchronization for thread-safe access
	initI18nOnce sync.Once
	printerMu    sync.RWMutex

	// Available languages
	supportedLanguages = map[string]language.Tag{
		LangEnglish: language.English,
		LangSpanish: language.Spanish,
		LangGerman:  language.German,
	}
)

// initI18n sets the message language. Preference order: --lang flag,
// SSM_LANG, LC_ALL, LANG, English.
func initI18n(langFlag string) {
	initI18nOnce.Do(registerMessages)

	lang := determineLang(langFlag)
	tag, exists := supportedLanguages[lang]
	if !exists {
		tag = language.English
	}

	printerMu.Lock()
	printer = message.NewPrinter(tag)
	printerMu.Unlock()
}

// T returns the localized message for key.
func T(key string, args ...interface{}) string {
	printerMu.RLock()
	p := printer
	printerMu.RUnlock()

	if p == nil {
		initI18n("")
		printerMu.RLock()
		p = printer
		printerMu.RUnlock()
	}

	return p.Sprintf(key, args...)
}

func determineLang(langFlag string) string {
	if langFlag != "" {
		return normalizeLanguage(langFlag)
	}
	if envLang := os.Getenv("SSM_LANG"); envLang != "" {
		return normalizeLanguage(envLang)
	}
	if envLang := os.Getenv("LC_ALL"); envLang != "" {
		return normalizeLanguage(envLang)
	}
	if envLang := os.Getenv("LANG"); envLang != "" {
		return normalizeLanguage(envLang)
	}
	return LangEnglish
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch {
	case strings.HasPrefix(lang, "en") || lang == "english":
		return LangEnglish
	case strings.HasPrefix(lang, "es") || lang == "spanish" || lang == "español":
		return LangSpanish
	case strings.HasPrefix(lang, "de") || lang == "german" || lang == "deutsch":
		return LangGerman
	default:
		return LangEnglish
	}
}

func registerMessages() {
	// Root command
	message.SetString(language.English, "root_short", "An SSH wrapper to simplify life")
	message.SetString(language.Spanish, "root_short", "Un envoltorio de SSH para simplificar la vida")
	message.SetString(language.German, "root_short", "Ein SSH-Wrapper, der das Leben vereinfacht")

	message.SetString(language.English, "root_long", "shortcuts for common SSH flags, host name completion from a configured domain list, and password autofill via sshpass. Where possible an OpenSSH config file should be used; ssm covers the options that need to be dynamic.")
	message.SetString(language.Spanish, "root_long", "atajos para las opciones comunes de SSH, autocompletado de nombres de servidor según una lista de dominios configurada y autorelleno de contraseñas mediante sshpass. Cuando sea posible conviene usar el archivo de configuración de OpenSSH; ssm cubre las opciones que deben ser dinámicas.")
	message.SetString(language.German, "root_long", "Abkürzungen für gängige SSH-Flags, Hostnamen-Vervollständigung über eine konfigurierte Domainliste und Passwort-Autofill per sshpass. Wo möglich sollte die OpenSSH-Konfigurationsdatei genutzt werden; ssm deckt die dynamischen Optionen ab.")

	message.SetString(language.English, "root_examples", "  ssm web01                # complete web01 against the domain list\n  ssm admin@10.0.0.5       # IP targets pass straight through\n  ssm -j db01              # hop via the configured jump host\n  ssm -t web01             # open a SOCKS5 tunnel\n  ssm -c uptime web01      # run a one-shot remote command")
	message.SetString(language.Spanish, "root_examples", "  ssm web01                # completar web01 con la lista de dominios\n  ssm admin@10.0.0.5       # las IP pasan sin cambios\n  ssm -j db01              # saltar por el servidor de salto configurado\n  ssm -t web01             # abrir un túnel SOCKS5\n  ssm -c uptime web01      # ejecutar un comando remoto")
	message.SetString(language.German, "root_examples", "  ssm web01                # web01 über die Domainliste vervollständigen\n  ssm admin@10.0.0.5       # IP-Ziele werden durchgereicht\n  ssm -j db01              # über den konfigurierten Jump-Host verbinden\n  ssm -t web01             # einen SOCKS5-Tunnel öffnen\n  ssm -c uptime web01      # einen Remote-Befehl ausführen")

	// Flags
	message.SetString(language.English, "flag_command_help", "execute a command on the remote system instead of opening a shell; -t is ignored")
	message.SetString(language.Spanish, "flag_command_help", "ejecutar un comando en el sistema remoto en vez de abrir una shell; -t se ignora")
	message.SetString(language.German, "flag_command_help", "einen Befehl auf dem Zielsystem ausführen statt eine Shell zu öffnen; -t wird ignoriert")

	message.SetString(language.English, "flag_jump_help", "connect via the jump host from the configuration file")
	message.SetString(language.Spanish, "flag_jump_help", "conectar mediante el servidor de salto del archivo de configuración")
	message.SetString(language.German, "flag_jump_help", "über den Jump-Host aus der Konfigurationsdatei verbinden")

	message.SetString(language.English, "flag_jumphost_help", "override the configured jump host")
	message.SetString(language.Spanish, "flag_jumphost_help", "sustituir el servidor de salto configurado")
	message.SetString(language.German, "flag_jumphost_help", "den konfigurierten Jump-Host überschreiben")

	message.SetString(language.English, "flag_nopubkey_help", "disable public key authentication (deprecated, use ssh_options)")
	message.SetString(language.Spanish, "flag_nopubkey_help", "desactivar la autenticación por clave pública (obsoleto, use ssh_options)")
	message.SetString(language.German, "flag_nopubkey_help", "Public-Key-Authentifizierung deaktivieren (veraltet, ssh_options verwenden)")

	message.SetString(language.English, "flag_port_help", "port for the SSH session (default from config)")
	message.SetString(language.Spanish, "flag_port_help", "puerto para la sesión SSH (predeterminado según la configuración)")
	message.SetString(language.German, "flag_port_help", "Port für die SSH-Sitzung (Standard aus der Konfiguration)")

	message.SetString(language.English, "flag_tunnel_help", "open a SOCKS5 tunnel on the configured tunnel port")
	message.SetString(language.Spanish, "flag_tunnel_help", "abrir un túnel SOCKS5 en el puerto de túnel configurado")
	message.SetString(language.German, "flag_tunnel_help", "einen SOCKS5-Tunnel auf dem konfigurierten Tunnelport öffnen")

	message.SetString(language.English, "flag_dry_run_help", "print the ssh invocation instead of running it")
	message.SetString(language.Spanish, "flag_dry_run_help", "mostrar la invocación de ssh en vez de ejecutarla")
	message.SetString(language.German, "flag_dry_run_help", "den ssh-Aufruf ausgeben statt ihn auszuführen")

	message.SetString(language.English, "flag_verbose_help", "verbose debug output, up to -vvv")
	message.SetString(language.Spanish, "flag_verbose_help", "salida de depuración detallada, hasta -vvv")
	message.SetString(language.German, "flag_verbose_help", "ausführliche Debug-Ausgabe, bis zu -vvv")

	message.SetString(language.English, "flag_lang_help", "message language (en, es, de)")
	message.SetString(language.Spanish, "flag_lang_help", "idioma de los mensajes (en, es, de)")
	message.SetString(language.German, "flag_lang_help", "Sprache der Meldungen (en, es, de)")

	// Config command family
	message.SetString(language.English, "config_short", "Inspect and edit the ssm configuration file")
	message.SetString(language.Spanish, "config_short", "Inspeccionar y editar el archivo de configuración de ssm")
	message.SetString(language.German, "config_short", "Die ssm-Konfigurationsdatei ansehen und bearbeiten")

	message.SetString(language.English, "config_long", "Reads the configuration the same way a session does (including schema migration), and writes changes back atomically.")
	message.SetString(language.Spanish, "config_long", "Lee la configuración igual que una sesión (incluida la migración de esquema) y escribe los cambios de forma atómica.")
	message.SetString(language.German, "config_long", "Liest die Konfiguration genau wie eine Sitzung (einschließlich Schema-Migration) und schreibt Änderungen atomar zurück.")

	message.SetString(language.English, "config_show_short", "Show the effective configuration")
	message.SetString(language.Spanish, "config_show_short", "Mostrar la configuración efectiva")
	message.SetString(language.German, "config_show_short", "Die effektive Konfiguration anzeigen")

	message.SetString(language.English, "config_edit_short", "Edit the configuration interactively")
	message.SetString(language.Spanish, "config_edit_short", "Editar la configuración de forma interactiva")
	message.SetString(language.German, "config_edit_short", "Die Konfiguration interaktiv bearbeiten")

	message.SetString(language.English, "config_set_short", "Set a single configuration value")
	message.SetString(language.Spanish, "config_set_short", "Establecer un valor de configuración")
	message.SetString(language.German, "config_set_short", "Einen einzelnen Konfigurationswert setzen")

	message.SetString(language.English, "config_unset_short", "Remove a configuration value")
	message.SetString(language.Spanish, "config_unset_short", "Eliminar un valor de configuración")
	message.SetString(language.German, "config_unset_short", "Einen Konfigurationswert entfernen")

	message.SetString(language.English, "config_init_short", "Write a sample config to the per-user path")
	message.SetString(language.Spanish, "config_init_short", "Escribir una configuración de ejemplo en la ruta del usuario")
	message.SetString(language.German, "config_init_short", "Eine Beispielkonfiguration in den Benutzerpfad schreiben")

	message.SetString(language.English, "config_path_short", "Print which config file is in use")
	message.SetString(language.Spanish, "config_path_short", "Mostrar qué archivo de configuración está en uso")
	message.SetString(language.German, "config_path_short", "Anzeigen, welche Konfigurationsdatei verwendet wird")

	message.SetString(language.English, "config_path_none", "no config file found; built-in defaults are in effect")
	message.SetString(language.Spanish, "config_path_none", "no se encontró archivo de configuración; se usan los valores predeterminados")
	message.SetString(language.German, "config_path_none", "keine Konfigurationsdatei gefunden; die eingebauten Standardwerte gelten")

	message.SetString(language.English, "config_init_done", "wrote sample config to %s")
	message.SetString(language.Spanish, "config_init_done", "configuración de ejemplo escrita en %s")
	message.SetString(language.German, "config_init_done", "Beispielkonfiguration nach %s geschrieben")

	message.SetString(language.English, "config_saved", "saved %s")
	message.SetString(language.Spanish, "config_saved", "guardado %s")
	message.SetString(language.German, "config_saved", "%s gespeichert")

	message.SetString(language.English, "config_source_defaults", "built-in defaults")
	message.SetString(language.Spanish, "config_source_defaults", "valores predeterminados integrados")
	message.SetString(language.German, "config_source_defaults", "eingebaute Standardwerte")

	message.SetString(language.English, "config_show_header", "Effective configuration (%s)")
	message.SetString(language.Spanish, "config_show_header", "Configuración efectiva (%s)")
	message.SetString(language.German, "config_show_header", "Effektive Konfiguration (%s)")

	message.SetString(language.English, "col_setting", "Setting")
	message.SetString(language.Spanish, "col_setting", "Ajuste")
	message.SetString(language.German, "col_setting", "Einstellung")

	message.SetString(language.English, "col_value", "Value")
	message.SetString(language.Spanish, "col_value", "Valor")
	message.SetString(language.German, "col_value", "Wert")

	// Version
	message.SetString(language.English, "version_short", "Show version information")
	message.SetString(language.Spanish, "version_short", "Mostrar información de versión")
	message.SetString(language.German, "version_short", "Versionsinformationen anzeigen")

	// Migration
	message.SetString(language.English, "migration_done", "config file upgraded from schema %d to %d")
	message.SetString(language.Spanish, "migration_done", "archivo de configuración actualizado del esquema %d al %d")
	message.SetString(language.German, "migration_done", "Konfigurationsdatei von Schema %d auf %d aktualisiert")

	message.SetString(language.English, "migration_report_header", "Warning: some settings could not be carried forward:")
	message.SetString(language.Spanish, "migration_report_header", "Aviso: algunos ajustes no pudieron conservarse:")
	message.SetString(language.German, "migration_report_header", "Warnung: einige Einstellungen konnten nicht übernommen werden:")

	// Editor
	message.SetString(language.English, "edit_ssh_port", "SSH port")
	message.SetString(language.Spanish, "edit_ssh_port", "Puerto SSH")
	message.SetString(language.German, "edit_ssh_port", "SSH-Port")

	message.SetString(language.English, "edit_tunnel_port", "Tunnel port")
	message.SetString(language.Spanish, "edit_tunnel_port", "Puerto del túnel")
	message.SetString(language.German, "edit_tunnel_port", "Tunnelport")

	message.SetString(language.English, "edit_jump_host", "Jump host")
	message.SetString(language.Spanish, "edit_jump_host", "Servidor de salto")
	message.SetString(language.German, "edit_jump_host", "Jump-Host")

	message.SetString(language.English, "edit_jump_host_desc", "Used by the -j flag; leave empty for none")
	message.SetString(language.Spanish, "edit_jump_host_desc", "Usado por la opción -j; dejar vacío para ninguno")
	message.SetString(language.German, "edit_jump_host_desc", "Wird von -j verwendet; leer lassen für keinen")

	message.SetString(language.English, "edit_domains", "Search domains")
	message.SetString(language.Spanish, "edit_domains", "Dominios de búsqueda")
	message.SetString(language.German, "edit_domains", "Suchdomains")

	message.SetString(language.English, "edit_domains_desc", "Space-separated, tried in order when completing bare host names")
	message.SetString(language.Spanish, "edit_domains_desc", "Separados por espacios, probados en orden al completar nombres")
	message.SetString(language.German, "edit_domains_desc", "Durch Leerzeichen getrennt, der Reihe nach zur Namensvervollständigung probiert")

	message.SetString(language.English, "edit_ssh_options", "SSH options")
	message.SetString(language.Spanish, "edit_ssh_options", "Opciones SSH")
	message.SetString(language.German, "edit_ssh_options", "SSH-Optionen")

	message.SetString(language.English, "edit_ssh_options_desc", "Comma-separated Key=Value pairs passed as -o flags")
	message.SetString(language.Spanish, "edit_ssh_options_desc", "Pares Clave=Valor separados por comas, pasados como opciones -o")
	message.SetString(language.German, "edit_ssh_options_desc", "Kommagetrennte Key=Value-Paare, als -o-Flags übergeben")

	message.SetString(language.English, "edit_sshpass", "Use sshpass")
	message.SetString(language.Spanish, "edit_sshpass", "Usar sshpass")
	message.SetString(language.German, "edit_sshpass", "sshpass verwenden")

	message.SetString(language.English, "edit_sshpass_desc", "Wrap ssh in \"sshpass -e\" (password from the SSHPASS env var)")
	message.SetString(language.Spanish, "edit_sshpass_desc", "Envolver ssh en \"sshpass -e\" (contraseña de la variable SSHPASS)")
	message.SetString(language.German, "edit_sshpass_desc", "ssh in \"sshpass -e\" einpacken (Passwort aus der Variable SSHPASS)")

	// Warnings and errors
	message.SetString(language.English, "warn_nopubkey_deprecated", "Warning! Detected use of deprecated -o flag.")
	message.SetString(language.Spanish, "warn_nopubkey_deprecated", "¡Aviso! Se detectó el uso de la opción obsoleta -o.")
	message.SetString(language.German, "warn_nopubkey_deprecated", "Warnung! Verwendung des veralteten -o-Flags erkannt.")

	message.SetString(language.English, "warn_nopubkey_future", "The behavior of this flag will change in a future release; set ssh_options in the config file instead")
	message.SetString(language.Spanish, "warn_nopubkey_future", "El comportamiento de esta opción cambiará en una versión futura; configure ssh_options en el archivo de configuración")
	message.SetString(language.German, "warn_nopubkey_future", "Das Verhalten dieses Flags ändert sich in einer künftigen Version; stattdessen ssh_options in der Konfigurationsdatei setzen")

	message.SetString(language.English, "err_command_twice", "remote command given both as arguments and via -c")
	message.SetString(language.Spanish, "err_command_twice", "comando remoto indicado como argumentos y también con -c")
	message.SetString(language.German, "err_command_twice", "Remote-Befehl sowohl als Argumente als auch über -c angegeben")

	message.SetString(language.English, "err_empty_host", "host cannot be empty")
	message.SetString(language.Spanish, "err_empty_host", "el servidor no puede estar vacío")
	message.SetString(language.German, "err_empty_host", "der Host darf nicht leer sein")

	message.SetString(language.English, "err_no_fqdn", "no completion candidate resolved")
	message.SetString(language.Spanish, "err_no_fqdn", "ningún candidato de autocompletado se pudo resolver")
	message.SetString(language.German, "err_no_fqdn", "kein Vervollständigungskandidat war auflösbar")

	message.SetString(language.English, "err_no_jumphost", "no jump host configured; set jump_host or use -J")
	message.SetString(language.Spanish, "err_no_jumphost", "no hay servidor de salto configurado; defina jump_host o use -J")
	message.SetString(language.German, "err_no_jumphost", "kein Jump-Host konfiguriert; jump_host setzen oder -J verwenden")

	message.SetString(language.English, "err_edit_needs_tty", "interactive editing requires a terminal")
	message.SetString(language.Spanish, "err_edit_needs_tty", "la edición interactiva requiere un terminal")
	message.SetString(language.German, "err_edit_needs_tty", "interaktives Bearbeiten erfordert ein Terminal")

	message.SetString(language.English, "err_expected_key_value", "expected key=value")
	message.SetString(language.Spanish, "err_expected_key_value", "se esperaba clave=valor")
	message.SetString(language.German, "err_expected_key_value", "key=value erwartet")

	message.SetString(language.English, "err_unknown_key", "unknown setting; known keys: ssh_port, tunnel_port, jump_host, sshpass, domains, ssh_options, hosts.<alias>")
	message.SetString(language.Spanish, "err_unknown_key", "ajuste desconocido; claves válidas: ssh_port, tunnel_port, jump_host, sshpass, domains, ssh_options, hosts.<alias>")
	message.SetString(language.German, "err_unknown_key", "unbekannte Einstellung; gültige Schlüssel: ssh_port, tunnel_port, jump_host, sshpass, domains, ssh_options, hosts.<alias>")

	message.SetString(language.English, "err_expected_number", "expected a number")
	message.SetString(language.Spanish, "err_expected_number", "se esperaba un número")
	message.SetString(language.German, "err_expected_number", "eine Zahl wurde erwartet")

	message.SetString(language.English, "err_expected_bool", "expected true or false")
	message.SetString(language.Spanish, "err_expected_bool", "se esperaba true o false")
	message.SetString(language.German, "err_expected_bool", "true oder false wurde erwartet")

	message.SetString(language.English, "err_invalid_port", "port must be between 1 and 65535")
	message.SetString(language.Spanish, "err_invalid_port", "el puerto debe estar entre 1 y 65535")
	message.SetString(language.German, "err_invalid_port", "der Port muss zwischen 1 und 65535 liegen")
}
